package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type CurrentWeatherRequest struct {
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
	City string   `json:"city"`
}

var currentWeatherRequestSchema = z.Struct(z.Shape{
	"Lat":  z.Ptr(z.Float64().GTE(-90).LTE(90)),
	"Lon":  z.Ptr(z.Float64().GTE(-180).LTE(180)),
	"City": z.String().Optional(),
})

func (rs *RestfulServer) GetCurrentWeather(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req CurrentWeatherRequest
	if err := currentWeatherRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.City != "" {
		data, err := rs.Weather.CurrentWeather(c.Request.Context(), 0, 0, req.City)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
			return
		}
		c.JSON(http.StatusOK, data)
		return
	}

	if req.Lat == nil || req.Lon == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either provide (lat, lon) or city parameter"})
		return
	}

	data, err := rs.Weather.CurrentWeather(c.Request.Context(), *req.Lat, *req.Lon, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch weather data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

type DailyForecastRequest struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Days *int    `json:"days"`
}

var dailyForecastRequestSchema = z.Struct(z.Shape{
	"Lat":  z.Float64().GTE(-90).LTE(90).Required(),
	"Lon":  z.Float64().GTE(-180).LTE(180).Required(),
	"Days": z.Ptr(z.Int().GTE(1).LTE(7)),
})

func (rs *RestfulServer) GetDailyForecast(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req DailyForecastRequest
	if err := dailyForecastRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	days := 7
	if req.Days != nil {
		days = *req.Days
	}

	resp, err := rs.Weather.DailyForecast(c.Request.Context(), req.Lat, req.Lon, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forecast"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

type HourlyForecastRequest struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Hours *int    `json:"hours"`
}

var hourlyForecastRequestSchema = z.Struct(z.Shape{
	"Lat":   z.Float64().GTE(-90).LTE(90).Required(),
	"Lon":   z.Float64().GTE(-180).LTE(180).Required(),
	"Hours": z.Ptr(z.Int().GTE(3).LTE(120)),
})

func (rs *RestfulServer) GetHourlyForecast(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req HourlyForecastRequest
	if err := hourlyForecastRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	hours := 24
	if req.Hours != nil {
		hours = *req.Hours
	}

	resp, err := rs.Weather.HourlyForecast(c.Request.Context(), req.Lat, req.Lon, hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forecast"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
