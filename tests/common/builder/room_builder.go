//go:build unit || e2e

package builder

import (
	"time"

	domroom "roombook/internal/domain/room"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
)

type RoomBuilder struct {
	ID        int64
	Name      string
	Capacity  int
	Features  []string
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:        1,
		Name:      "Boardroom",
		Capacity:  8,
		Features:  []string{"whiteboard", "projector"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Name, r.Capacity, domroom.NewFeatures(r.Features), r.Image)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Features:  r.Features,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}

func (r *RoomBuilder) WithFeatures(features ...string) *RoomBuilder {
	r.Features = features
	return r
}

func (r *RoomBuilder) WithImage(image string) *RoomBuilder {
	r.Image = &image
	return r
}
