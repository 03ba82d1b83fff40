// session/archive.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package session

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// The archive form is the msgpack-encoded Session compressed with zstd;
// it is the format of choice for keeping a summer's worth of outings
// around.

func writeArchive(w io.Writer, s Session) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := msgpack.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return zw.Close()
}

func readArchive(r io.Reader) (Session, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Session{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var s Session
	if err := msgpack.NewDecoder(zr).Decode(&s); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}
