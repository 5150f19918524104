// Copyright 2025 Zaya Barrini
//   This file is part of ZGDB.
//
//  ZGDB is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ZGDB is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with ZGDB.  If not, see <https://www.gnu.org/licenses/>.

package gerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicValueToErrFromError(t *testing.T) {
	cause := errors.New("boom")
	err := PanicValueToErr(cause)
	assert.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestPanicValueToErrFromString(t *testing.T) {
	err := PanicValueToErr("index out of range")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestPanicValueToErrFromOtherValue(t *testing.T) {
	err := PanicValueToErr(42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "int")
}

func TestParseErrorReportsPath(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ParseError{Path: "/data/ud/de-train.conllu", Err: cause}
	assert.Contains(t, err.Error(), "/data/ud/de-train.conllu")
	assert.ErrorIs(t, err, cause)
}
