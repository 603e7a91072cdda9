package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type API struct {
	store    Store
	calendar Calendar
}

func NewAPI(store Store, calendar Calendar) *API {
	return &API{
		store:    store,
		calendar: calendar,
	}
}

// resolveFamily loads the caller and their family. On failure it writes
// the response itself and returns ok=false.
func (a *API) resolveFamily(c *gin.Context) (*User, *Family, bool) {
	uid := c.GetString("uid")

	user, err := a.store.GetUser(c.Request.Context(), uid)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user has no family"})
		return nil, nil, false
	}
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	if user.FamilyID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "user has no family"})
		return nil, nil, false
	}

	family, err := a.store.GetFamily(c.Request.Context(), user.FamilyID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "family not found"})
		return nil, nil, false
	}
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}

	return user, family, true
}

func (a *API) FetchFamilyData(c *gin.Context) {
	_, family, ok := a.resolveFamily(c)
	if !ok {
		return
	}

	members, err := a.store.GetMembers(c.Request.Context(), family.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := a.store.GetEvents(c.Request.Context(), family.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"family":  family,
		"members": members,
		"events":  events,
	})
}

type CreateEventInput struct {
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required,gtfield=Start"`
	Summary     string    `json:"summary" binding:"required"`
	Description string    `json:"description"`
	UserID      string    `json:"userId" binding:"required"`
}

func (a *API) CreateFamilyEvent(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, family, ok := a.resolveFamily(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// Both bounds are pulled in by one second so back-to-back bookings
	// do not count as a conflict.
	starting, err := a.store.EventsStartingBetween(ctx, family.ID, input.Start, input.End.Add(-time.Second))
	if err != nil {
		respondError(c, err)
		return
	}
	ending, err := a.store.EventsEndingBetween(ctx, family.ID, input.Start.Add(time.Second), input.End)
	if err != nil {
		respondError(c, err)
		return
	}

	// The check runs against the caller's own bookings, not the assigned
	// member's.
	busy := false
	for _, event := range append(starting, ending...) {
		if event.AssignFor == user.ID {
			busy = true
		}
	}
	if busy {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule already exists"})
		return
	}

	assignee, err := a.store.GetUser(ctx, input.UserID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "assigned user not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	eventID, err := a.calendar.InsertEvent(ctx, family.CalendarID, CalendarEvent{
		Summary:     input.Summary,
		Description: "<b>" + assignee.Name + "</b><br>" + input.Description,
		Start:       input.Start,
		End:         input.End,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := NewID()
	if err != nil {
		respondError(c, err)
		return
	}

	event := Event{
		ID:          id,
		Creator:     user.ID,
		Start:       input.Start,
		End:         input.End,
		Summary:     input.Summary,
		Description: input.Description,
		AssignFor:   input.UserID,
		EventID:     eventID,
	}

	// No rollback of the external event if this write fails. The two
	// systems are allowed to drift in that window.
	if err := a.store.PutEvent(ctx, family.ID, event); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (a *API) RemoveFamilyEvent(c *gin.Context) {
	user, family, ok := a.resolveFamily(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	event, err := a.store.GetEvent(ctx, family.ID, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if user.ID != event.Creator {
		member, err := a.store.GetMember(ctx, family.ID, user.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			respondError(c, err)
			return
		}
		if member == nil || member.Role != RoleOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "only the creator or an owner can delete this event"})
			return
		}
	}

	// External side goes first. If the local delete below fails the
	// external event is already gone and stays gone.
	if err := a.calendar.DeleteEvent(ctx, family.CalendarID, event.EventID); err != nil {
		respondError(c, err)
		return
	}

	if err := a.store.DeleteEvent(ctx, family.ID, event.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

type CreateFamilyInput struct {
	Name string `json:"name" binding:"required"`
}

func (a *API) CreateFamily(c *gin.Context) {
	var input CreateFamilyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetString("uid")
	ctx := c.Request.Context()

	user, err := a.store.GetUser(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if user.FamilyID != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already has a family"})
		return
	}

	calendarID, err := a.calendar.CreateCalendar(ctx, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := NewID()
	if err != nil {
		respondError(c, err)
		return
	}

	family := &Family{
		ID:         id,
		Name:       input.Name,
		CalendarID: calendarID,
	}
	if err := a.store.CreateFamily(ctx, family); err != nil {
		respondError(c, err)
		return
	}
	if err := a.store.PutMember(ctx, family.ID, Member{ID: user.ID, Role: RoleOwner}); err != nil {
		respondError(c, err)
		return
	}
	if err := a.store.SetUserFamily(ctx, user.ID, family.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"family": family})
}

// respondError maps store/calendar failures to 500. The subsystem prefix
// lives in the error string itself.
func respondError(c *gin.Context, err error) {
	log.Println(err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
