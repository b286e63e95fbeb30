package repository

import (
	"errors"
	"iter"
	"slices"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrDuplicateMember = errors.New("member already exists")
)

// MemberList is the keyed in-memory collection of members. Name search is an
// exact-match linear scan; iteration follows enrollment order.
type MemberList struct {
	byID    map[uuid.UUID]*domain.Member
	ordered []*domain.Member
}

// NewMemberList creates an empty member list.
func NewMemberList() *MemberList {
	return &MemberList{byID: make(map[uuid.UUID]*domain.Member)}
}

// Add enrolls a member. It fails with ErrDuplicateMember on an id collision.
func (l *MemberList) Add(m *domain.Member) error {
	if _, exists := l.byID[m.ID]; exists {
		return ErrDuplicateMember
	}
	l.byID[m.ID] = m
	l.ordered = append(l.ordered, m)
	return nil
}

// Remove deletes a member by id.
func (l *MemberList) Remove(id uuid.UUID) error {
	m, ok := l.byID[id]
	if !ok {
		return ErrMemberNotFound
	}
	delete(l.byID, id)
	l.ordered = slices.DeleteFunc(l.ordered, func(o *domain.Member) bool {
		return o == m
	})
	return nil
}

// FindByID retrieves a member by id.
func (l *MemberList) FindByID(id uuid.UUID) (*domain.Member, error) {
	m, ok := l.byID[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

// FindByName retrieves the first member whose name matches exactly.
func (l *MemberList) FindByName(name string) (*domain.Member, error) {
	for _, m := range l.ordered {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, ErrMemberNotFound
}

// All returns a restartable sequence over the members in enrollment order.
func (l *MemberList) All() iter.Seq[*domain.Member] {
	return func(yield func(*domain.Member) bool) {
		for _, m := range l.ordered {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of enrolled members.
func (l *MemberList) Len() int {
	return len(l.ordered)
}

// Replace discards the current contents and installs the given members, in
// order. Used when restoring from a snapshot.
func (l *MemberList) Replace(members []domain.Member) {
	l.byID = make(map[uuid.UUID]*domain.Member, len(members))
	l.ordered = l.ordered[:0]
	for i := range members {
		m := members[i]
		l.byID[m.ID] = &m
		l.ordered = append(l.ordered, &m)
	}
}
