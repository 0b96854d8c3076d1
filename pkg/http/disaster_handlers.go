package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"skywarden.dev/weather-alert-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type NearbyDisasterRequest struct {
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	UserType    string   `json:"user_type"`
	MaxDistance *float64 `json:"max_distance"`
}

var nearbyDisasterRequestSchema = z.Struct(z.Shape{
	"Lat":         z.Float64().GTE(-90).LTE(90).Required(),
	"Lon":         z.Float64().GTE(-180).LTE(180).Required(),
	"UserType":    z.String().Optional(),
	"MaxDistance": z.Ptr(z.Float64().GT(0)),
})

func (req *NearbyDisasterRequest) resolve() (string, float64) {
	userType := req.UserType
	if userType == "" {
		userType = string(models.UserTypeGeneral)
	}
	maxDistance := 1000.0
	if req.MaxDistance != nil {
		maxDistance = *req.MaxDistance
	}
	return userType, maxDistance
}

func (rs *RestfulServer) GetEarthquakes(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req NearbyDisasterRequest
	if err := nearbyDisasterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	userType, maxDistance := req.resolve()

	events, err := rs.SeismicFeed.FetchEarthquakes(c.Request.Context(), 4.5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch earthquake data"})
		return
	}

	alerts := rs.Core.Seismic.ClassifyEarthquakes(events, req.Lat, req.Lon, userType, maxDistance)

	if rs.Metrics != nil {
		rs.Metrics.SeismicAlerts.WithLabelValues(models.SeismicKindEarthquake).Add(float64(len(alerts)))
	}
	if rs.Dispatcher != nil {
		rs.Dispatcher.MaybeNotifySeismic(c.Request.Context(), alerts)
	}

	c.JSON(http.StatusOK, gin.H{"count": len(alerts), "alerts": alerts})
}

type GlobalEarthquakesRequest struct {
	MinMagnitude *float64 `json:"min_magnitude"`
	Limit        *int     `json:"limit"`
}

var globalEarthquakesRequestSchema = z.Struct(z.Shape{
	"MinMagnitude": z.Ptr(z.Float64().GTE(0)),
	"Limit":        z.Ptr(z.Int().GTE(1)),
})

func (rs *RestfulServer) GetGlobalEarthquakes(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req GlobalEarthquakesRequest
	if err := globalEarthquakesRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	minMagnitude := 4.5
	if req.MinMagnitude != nil {
		minMagnitude = *req.MinMagnitude
	}
	limit := 50
	if req.Limit != nil {
		limit = *req.Limit
	}

	events, err := rs.SeismicFeed.FetchEarthquakes(c.Request.Context(), minMagnitude)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch global earthquake data"})
		return
	}

	if len(events) > limit {
		events = events[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"count": len(events), "earthquakes": events})
}

func (rs *RestfulServer) GetTsunamiWarnings(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req NearbyDisasterRequest
	if err := nearbyDisasterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	userType, maxDistance := req.resolve()

	events, err := rs.SeismicFeed.FetchEarthquakes(c.Request.Context(), 6.0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tsunami warnings"})
		return
	}

	alerts := rs.Core.Seismic.ClassifyTsunamis(events, req.Lat, req.Lon, userType, maxDistance)

	if rs.Metrics != nil {
		rs.Metrics.SeismicAlerts.WithLabelValues(models.SeismicKindTsunami).Add(float64(len(alerts)))
	}
	if rs.Dispatcher != nil {
		rs.Dispatcher.MaybeNotifySeismic(c.Request.Context(), alerts)
	}

	c.JSON(http.StatusOK, gin.H{"count": len(alerts), "alerts": alerts})
}

type DisasterMapRequest struct {
	MinMagnitude *float64 `json:"min_magnitude"`
	Limit        *int     `json:"limit"`
}

var disasterMapRequestSchema = z.Struct(z.Shape{
	"MinMagnitude": z.Ptr(z.Float64().GTE(0)),
	"Limit":        z.Ptr(z.Int().GTE(1)),
})

// GetDisasterMap returns worldwide earthquake and tsunami events formatted
// for the analytics map.
func (rs *RestfulServer) GetDisasterMap(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req DisasterMapRequest
	if err := disasterMapRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	minMagnitude := 4.5
	if req.MinMagnitude != nil {
		minMagnitude = *req.MinMagnitude
	}
	limit := 100
	if req.Limit != nil {
		limit = *req.Limit
	}

	events, err := rs.SeismicFeed.FetchEarthquakes(c.Request.Context(), minMagnitude)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch global disaster data"})
		return
	}

	// tsunami markers come from events flagged by the feed, magnitude 6.0+
	tsunamiEvents, err := rs.SeismicFeed.FetchEarthquakes(c.Request.Context(), 6.0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch global disaster data"})
		return
	}

	earthquakeMarkers := make([]gin.H, 0, len(events))
	maxMagnitude := 0.0
	for i, ev := range events {
		if ev.Magnitude > maxMagnitude {
			maxMagnitude = ev.Magnitude
		}
		if i < limit {
			earthquakeMarkers = append(earthquakeMarkers, gin.H{
				"id":                ev.ID,
				"type":              models.SeismicKindEarthquake,
				"magnitude":         ev.Magnitude,
				"location":          ev.Place,
				"lat":               ev.Latitude,
				"lon":               ev.Longitude,
				"depth_km":          ev.DepthKm,
				"time":              ev.Time,
				"tsunami_potential": ev.Tsunami,
				"url":               ev.URL,
			})
		}
	}

	tsunamiMarkers := make([]gin.H, 0)
	for _, ev := range tsunamiEvents {
		if !ev.Tsunami {
			continue
		}
		tsunamiMarkers = append(tsunamiMarkers, gin.H{
			"id":        "tsunami_" + ev.ID,
			"type":      models.SeismicKindTsunami,
			"magnitude": ev.Magnitude,
			"location":  ev.Place,
			"lat":       ev.Latitude,
			"lon":       ev.Longitude,
			"time":      ev.Time,
			"url":       ev.URL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"earthquakes": earthquakeMarkers,
		"tsunamis":    tsunamiMarkers,
		"summary": gin.H{
			"total_earthquakes": len(events),
			"total_tsunamis":    len(tsunamiMarkers),
			"max_magnitude":     maxMagnitude,
			"last_updated":      rs.Core.Now(),
		},
	})
}
