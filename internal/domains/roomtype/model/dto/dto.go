package dto

import (
	"mime/multipart"

	"inn/internal/domains/roomtype/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	Description   string                `json:"description"     validate:"omitempty,max=500"`
	PricePerNight int64                 `json:"price_per_night" validate:"required,min=0"`
	MaxCapacity   int                   `json:"max_capacity"    validate:"required,min=1"`
	TotalUnits    int                   `json:"total_units"     validate:"required,min=0"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string, imageURL string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomType{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		MaxCapacity:   c.MaxCapacity,
		TotalUnits:    c.TotalUnits,
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name          string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   string                `db:"description"     json:"description"     validate:"omitempty,max=500"`
	PricePerNight *int64                `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	MaxCapacity   *int                  `db:"max_capacity"    json:"max_capacity"    validate:"omitempty,min=1"`
	TotalUnits    *int                  `db:"total_units"     json:"total_units"     validate:"omitempty,min=0"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PricePerNight int64  `json:"price_per_night"`
	MaxCapacity   int    `json:"max_capacity"`
	TotalUnits    int    `json:"total_units"`
	Image         string `json:"image"`
	Active        bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.MaxCapacity = model.MaxCapacity
	r.TotalUnits = model.TotalUnits
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
