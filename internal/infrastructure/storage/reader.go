package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
)

var ErrBadReplay = errors.New("bad replay file")

// maxCommands ограничивает аллокацию по заголовку из файла.
const maxCommands = 1 << 20

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	session, err := readBinary(f)
	if err != nil {
		return nil, fmt.Errorf("load replay %s: %w", path, err)
	}
	return session, nil
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic", ErrBadReplay)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadReplay, header.Version, Version1)
	}
	if header.CommandCount > maxCommands {
		return nil, fmt.Errorf("%w: %d commands", ErrBadReplay, header.CommandCount)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Commands:  make([]domain.Command, header.CommandCount),
	}

	for i := range session.Commands {
		var rec CommandRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		session.Commands[i] = domain.Command{
			Action: domain.ActionType(rec.Action),
			Dx:     int(rec.Dx),
			Dy:     int(rec.Dy),
			Item:   types.EntityID(rec.Item),
		}
	}

	return session, nil
}
