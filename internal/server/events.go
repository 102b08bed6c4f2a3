package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jbnu-feel/feelgeo/internal/models"
	"github.com/jbnu-feel/feelgeo/internal/repository"
)

const dateLayout = "2006-01-02"

// handleListEvents returns calendar events filtered by year/month or by
// an explicit date range. Without filters it returns every event.
func (s *Server) handleListEvents(c *gin.Context) {
	start, end, ok, err := eventRange(c)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 날짜 형식입니다.")
		return
	}

	var events []models.Event
	if ok {
		events, err = s.repo.ListEvents(c.Request.Context(), start, end)
	} else {
		events, err = s.repo.AllEvents(c.Request.Context())
	}
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to list events", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": events})
}

// eventRange derives the [start, end] filter from the query parameters.
// ok is false when no filter was supplied.
func eventRange(c *gin.Context) (start, end time.Time, ok bool, err error) {
	if startStr, endStr := c.Query("startDate"), c.Query("endDate"); startStr != "" || endStr != "" {
		if start, err = time.Parse(dateLayout, startStr); err != nil {
			return start, end, false, fmt.Errorf("invalid startDate: %w", err)
		}
		if end, err = time.Parse(dateLayout, endStr); err != nil {
			return start, end, false, fmt.Errorf("invalid endDate: %w", err)
		}
		return start, end, true, nil
	}

	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		return start, end, false, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return start, end, false, fmt.Errorf("invalid year: %w", err)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return start, end, false, fmt.Errorf("invalid month: %v", monthStr)
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, true, nil
}

// handleAllEvents returns every calendar event (bulk endpoint).
func (s *Server) handleAllEvents(c *gin.Context) {
	events, err := s.repo.AllEvents(c.Request.Context())
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to list all events", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": events})
}

// handleGetEvent returns a single event by id.
func (s *Server) handleGetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	event, err := s.repo.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "일정을 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to get event", "id", eventID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusOK, event)
}

type eventRequest struct {
	DateStart    string `json:"date_start" binding:"required"`
	DateEnd      string `json:"date_end" binding:"required"`
	TitleKorean  string `json:"event_korean" binding:"required"`
	TitleEnglish string `json:"event_english"`
}

func (req *eventRequest) toModel(id int) (models.Event, error) {
	start, err := time.Parse(dateLayout, req.DateStart)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid date_start: %w", err)
	}
	end, err := time.Parse(dateLayout, req.DateEnd)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid date_end: %w", err)
	}
	if end.Before(start) {
		return models.Event{}, errors.New("date_end before date_start")
	}

	return models.Event{
		ID:           id,
		DateStart:    start,
		DateEnd:      end,
		TitleKorean:  req.TitleKorean,
		TitleEnglish: req.TitleEnglish,
	}, nil
}

// handleCreateEvent inserts a new calendar event.
func (s *Server) handleCreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "일정 정보를 입력해주세요.")
		return
	}

	event, err := req.toModel(0)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 날짜 형식입니다.")
		return
	}

	eventID, err := s.repo.CreateEvent(c.Request.Context(), event)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "Failed to create event", "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": eventID})
}

// handleUpdateEvent replaces the fields of an event.
func (s *Server) handleUpdateEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	var req eventRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "일정 정보를 입력해주세요.")
		return
	}

	event, err := req.toModel(eventID)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 날짜 형식입니다.")
		return
	}

	if err = s.repo.UpdateEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "일정을 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to update event", "id", eventID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// handleDeleteEvent removes an event.
func (s *Server) handleDeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 일정 ID입니다.")
		return
	}

	if err = s.repo.DeleteEvent(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "일정을 찾을 수 없습니다.")
			return
		}
		s.log.ErrorContext(c.Request.Context(), "Failed to delete event", "id", eventID, "error", err)
		errorJSON(c, http.StatusInternalServerError, "")
		return
	}

	c.Status(http.StatusNoContent)
}
