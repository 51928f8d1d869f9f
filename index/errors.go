// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import "errors"

var (
	// ErrDuplicate is returned by Insert when the key is already indexed.
	ErrDuplicate = errors.New("key already exists")
	// ErrNotFound is returned when the key to remove is not indexed.
	ErrNotFound = errors.New("key not found")
	// ErrOutOfRange is returned by RemoveByRank for ranks outside [0, Len()).
	ErrOutOfRange = errors.New("rank out of range")
	// ErrMalformedKey is returned when a key cannot be read as a number.
	ErrMalformedKey = errors.New("malformed key")
	// ErrCorrupt wraps invariant violations reported by Validate.
	ErrCorrupt = errors.New("tree invariant violated")
)
