package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeon-engine/internal/domain"
)

const (
	MagicHeader string = `DGRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader — точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	CommandCount uint32  // 4 байта
}

// CommandRecord — одна команда фиксированного размера.
type CommandRecord struct {
	Action uint8  // 1
	Dx     int8   // 1
	Dy     int8   // 1
	_      uint8  // 1, выравнивание
	Item   uint64 // 8
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет сессию в SaveDir и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}

	filename := fmt.Sprintf("replay_%d_%d.dgrp", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", fmt.Errorf("write replay %s: %w", path, err)
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:      Version1,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		CommandCount: uint32(len(s.Commands)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, cmd := range s.Commands {
		if cmd.Dx < -128 || cmd.Dx > 127 || cmd.Dy < -128 || cmd.Dy > 127 {
			return fmt.Errorf("command %d: step (%d,%d) out of range", i, cmd.Dx, cmd.Dy)
		}
		rec := CommandRecord{
			Action: uint8(cmd.Action),
			Dx:     int8(cmd.Dx),
			Dy:     int8(cmd.Dy),
			Item:   uint64(cmd.Item),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	return nil
}
