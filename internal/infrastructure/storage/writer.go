package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeon-arena/internal/domain"

	"github.com/google/uuid"
)

const (
	MagicHeader string = `DSRP` // 4 байта
	Version1    uint32 = 1

	// Extension - расширение файлов записи.
	Extension = ".dsrp"
)

// ErrInvalidMagic - файл не является записью забега.
var ErrInvalidMagic = errors.New("storage: invalid replay magic")

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic      [4]byte  // 4 байта
	Version    uint32   // 4 байта
	Seed       int64    // 8 байт
	Timestamp  int64    // 8 байт
	RunID      [16]byte // 16 байт, uuid
	FrameCount uint32   // 4 байта
	NameLen    uint8    // 1 байт, за заголовком идёт имя игрока
}

// FrameRecord - один RLE-отрезок: кнопки и число тиков.
type FrameRecord struct {
	Buttons uint8  // 1
	Count   uint32 // 4
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет запись в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d%s", session.Seed, session.Timestamp, Extension)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	name := []byte(s.PlayerName)
	if len(name) > 255 {
		return fmt.Errorf("player name too long: %d", len(name))
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Timestamp:  s.Timestamp,
		FrameCount: uint32(len(s.Frames)),
		NameLen:    uint8(len(name)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	// Битый или пустой RunID пишем нулями: при чтении получится пустая строка
	if id, err := uuid.Parse(s.RunID); err == nil {
		header.RunID = id
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(name); err != nil {
		return err
	}

	// 2. Пишем отрезки кнопок
	for _, f := range s.Frames {
		rec := FrameRecord{Buttons: uint8(f.Buttons), Count: f.Count}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
	}

	return nil
}
