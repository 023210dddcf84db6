package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/sixdegrees/pkg/costar"
)

// Session is one player's view of the game: the current center of the
// acting universe and the path tree rooted at it.
//
// Sessions are created by [Game.NewSession] and changed only by
// [Game.SetCenter]. A session must not be used by more than one goroutine
// at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	center string
	tree   *costar.Graph
}

func newSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Center returns the current center of the acting universe.
func (s *Session) Center() string { return s.center }

// Tree returns the shortest-path tree rooted at the current center.
// Every edge points from an actor toward the center and is labeled with the
// movies the two actors share. The tree must not be modified.
func (s *Session) Tree() *costar.Graph { return s.tree }
