// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package shared

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound means there is no invitation for the given id or token.
	ErrNotFound = errors.New("not found")
	// ErrGone means the invitation expired.
	ErrGone = errors.New("invitation expired")
	// ErrInactive means the invitation reached a terminal status which blocks the requested transition.
	ErrInactive = errors.New("invitation is not active")
	// ErrConflict means the invitation is bound to a different invitee or was already answered.
	ErrConflict = errors.New("invitation conflict")
	// ErrForbidden means the caller is neither the inviter nor an operator.
	ErrForbidden = errors.New("forbidden")
	// ErrRateLimited means the inviter exhausted the invitation quota of the current window.
	ErrRateLimited = errors.New("too many invitations")
	// ErrPersistence wraps every error the store returned while writing.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError marks err as a store failure while keeping it inspectable with errors.Is.
func PersistenceError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &persistenceError{cause: errors.Wrap(err, msg)}
}

type persistenceError struct {
	cause error
}

func (p *persistenceError) Error() string {
	return p.cause.Error()
}

func (p *persistenceError) Unwrap() []error {
	return []error{ErrPersistence, p.cause}
}
