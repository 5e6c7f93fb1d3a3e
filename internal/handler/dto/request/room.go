package request

import "strings"

// Room mutations arrive as multipart forms so an image can ride along with
// the fields; features are a comma-delimited form value.
type RoomForm struct {
	Name     string `form:"name" binding:"required,max=120"`
	Capacity int    `form:"capacity" binding:"required,min=1"`
	Features string `form:"features"`
}

func (r RoomForm) FeatureList() []string {
	if strings.TrimSpace(r.Features) == "" {
		return nil
	}
	return strings.Split(r.Features, ",")
}
