package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"

	"github.com/google/uuid"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Frames:    make([]domain.ReplayFrame, header.FrameCount),
	}
	if id := uuid.UUID(header.RunID); id != uuid.Nil {
		session.RunID = id.String()
	}

	name := make([]byte, header.NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("failed to read player name: %w", err)
	}
	session.PlayerName = string(name)

	// 2. Читаем отрезки
	for i := range session.Frames {
		var rec FrameRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read frame %d: %w", i, err)
		}
		session.Frames[i] = domain.ReplayFrame{
			Buttons: input.Buttons(rec.Buttons),
			Count:   rec.Count,
		}
	}

	return session, nil
}
