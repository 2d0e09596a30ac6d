// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package utils

import (
	"errors"
	"io"
)

var ErrStreamTooLarge = errors.New("read too many bytes")

type ReadCounter interface {
	io.Reader
	Count() int64
}

type limitedReader struct {
	R      io.Reader // underlying reader
	N      int64     // bytes read
	atMost int64     // maximum number of bytes expected
}

// ReadAtMost returns a reader that fails with ErrStreamTooLarge once more
// than size bytes have been read. A non-positive size disables the limit.
func ReadAtMost(r io.Reader, size int64) ReadCounter {
	return &limitedReader{
		R:      r,
		atMost: size,
	}
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	n, err = l.R.Read(p)
	l.N += int64(n)
	if l.atMost > 0 && l.N > l.atMost {
		err = ErrStreamTooLarge
	}
	return n, err
}

func (l *limitedReader) Count() int64 {
	return l.N
}
