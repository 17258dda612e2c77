package dto

import "encoding/json"

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    *int    `json:"category" binding:"required"`
	BasePrice   float64 `json:"basePrice" binding:"required"`
	NumBed      int     `json:"numBed"`
	MaxPeople   int     `json:"maxPeople"`
	Description string  `json:"description"`
}

type UpdateRoomTypeRequest struct {
	Name        *string  `json:"name"`
	Category    *int     `json:"category"`
	BasePrice   *float64 `json:"basePrice"`
	NumBed      *int     `json:"numBed"`
	MaxPeople   *int     `json:"maxPeople"`
	Description *string  `json:"description"`
}

type CreateRoomRequest struct {
	Code        string  `json:"code" binding:"required"`
	RoomTypeID  uint    `json:"roomTypeId" binding:"required"`
	Floor       int     `json:"floor"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type UpdateRoomRequest struct {
	Code        *string  `json:"code"`
	RoomTypeID  *uint    `json:"roomTypeId"`
	Floor       *int     `json:"floor"`
	Price       *float64 `json:"price"`
	Status      *int     `json:"status"`
	Description *string  `json:"description"`
}

type RoomResponse struct {
	ID           uint            `json:"id"`
	Code         string          `json:"code"`
	RoomTypeID   uint            `json:"roomTypeId"`
	RoomTypeName string          `json:"roomTypeName"`
	Category     int             `json:"category"`
	Floor        int             `json:"floor"`
	Price        float64         `json:"price"`
	Status       int             `json:"status"`
	Description  string          `json:"description"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
}
