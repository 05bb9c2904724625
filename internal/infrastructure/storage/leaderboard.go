package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MaxEntries - сколько строк хранит таблица рекордов.
const MaxEntries = 10

// Entry - строка таблицы рекордов.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Leaderboard - таблица рекордов в текстовом файле, строки "name:score".
// Для каждого имени хранится лучший результат.
type Leaderboard struct {
	mu   sync.Mutex
	path string
}

func NewLeaderboard(path string) *Leaderboard {
	return &Leaderboard{path: path}
}

// Load читает таблицу. Отсутствующий файл - пустая таблица.
func (l *Leaderboard) Load() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Record добавляет результат забега и перезаписывает файл.
func (l *Leaderboard) Record(name string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}

	entries = Merge(entries, name, score)
	if err := l.save(entries); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "leaderboard",
		"name":      name,
		"score":     score,
	}).Info("Score recorded")
	return nil
}

func (l *Leaderboard) load() ([]Entry, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open leaderboard: %w", err)
	}
	defer f.Close()

	return parseEntries(f)
}

// save пишет во временный файл и переименовывает его поверх старого.
func (l *Leaderboard) save(entries []Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("create leaderboard: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		fmt.Fprintf(w, "%s:%d\n", e.Name, e.Score)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return os.Rename(tmp.Name(), l.path)
}

// parseEntries разбирает строки "name:score". Битые строки пропускаются.
func parseEntries(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		i := strings.LastIndexByte(line, ':')
		if i <= 0 {
			logger.Log.WithField("line", line).Warn("Skipping malformed leaderboard line")
			continue
		}
		score, err := strconv.Atoi(line[i+1:])
		if err != nil {
			logger.Log.WithField("line", line).Warn("Skipping malformed leaderboard line")
			continue
		}
		out = append(out, Entry{Name: line[:i], Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	return out, nil
}

// Merge добавляет результат, оставляет лучший на каждое имя,
// сортирует по убыванию и обрезает до MaxEntries.
func Merge(entries []Entry, name string, score int) []Entry {
	name = SanitizeName(name)

	best := make(map[string]int, len(entries)+1)
	order := make([]string, 0, len(entries)+1)
	add := func(n string, s int) {
		prev, ok := best[n]
		if !ok {
			order = append(order, n)
			best[n] = s
			return
		}
		if s > prev {
			best[n] = s
		}
	}
	for _, e := range entries {
		add(e.Name, e.Score)
	}
	add(name, score)

	out := make([]Entry, 0, len(order))
	for _, n := range order {
		out = append(out, Entry{Name: n, Score: best[n]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// SanitizeName убирает из имени символы, ломающие формат строки.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\n', '\r':
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "Player"
	}
	return name
}
