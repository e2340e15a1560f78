// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker for encoders that patch headers
// after writing the payload.
type WriteSeeker struct {
	data   []byte
	offset int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		grown := make([]byte, end)
		copy(grown, ws.data)
		ws.data = grown
	}
	copy(ws.data[ws.offset:], p)
	ws.offset = end

	return len(p), nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.data }
