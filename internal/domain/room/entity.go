package room

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("room name is required")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

const MaxNameLength = 120

type Room struct {
	id        int64
	name      string
	capacity  int
	features  Features
	image     *string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(name string, capacity int, features Features, image *string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		name:     name,
		capacity: capacity,
		features: features,
		image:    image,
	}, nil
}

func ReconstructRoom(id int64, name string, capacity int, features Features, image *string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		features:  features,
		image:     image,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Fits reports whether a meeting of the given size can be held in this room.
func (r *Room) Fits(participants int) bool {
	return participants <= r.capacity
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Features() Features   { return r.features }
func (r *Room) Image() *string       { return r.image }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
