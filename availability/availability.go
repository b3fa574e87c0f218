// Package availability computes a restaurant's operating status and
// per-item serving availability from declared hours, maintenance records
// and wall-clock time. Every function is pure: no I/O, no hidden state,
// identical inputs give identical outputs.
package availability

import (
	"time"

	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/apperr"
)

// Severity is the display tier attached to a status.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Status is the discrete operating state of a restaurant at an instant.
type Status int

const (
	StatusOpen Status = iota
	StatusOpenLimited
	StatusClosed
	StatusClosedAfterHours
	StatusClosedForMaintenance
)

// Label returns the client-facing text for the status.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Currently Open"
	case StatusOpenLimited:
		return "Open (Limited Service)"
	case StatusClosedAfterHours:
		return "Closed (After Hours)"
	case StatusClosedForMaintenance:
		return "Closed for Maintenance"
	default:
		return "Currently Closed"
	}
}

func (s Status) Severity() Severity {
	switch s {
	case StatusOpen:
		return SeveritySuccess
	case StatusOpenLimited:
		return SeverityWarning
	default:
		return SeverityDanger
	}
}

// IsOpen reports whether any service at all is running.
func (s Status) IsOpen() bool {
	return s == StatusOpen || s == StatusOpenLimited
}

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusOpenLimited:
		return "OPEN_LIMITED"
	case StatusClosedAfterHours:
		return "CLOSED_AFTER_HOURS"
	case StatusClosedForMaintenance:
		return "CLOSED_FOR_MAINTENANCE"
	default:
		return "CLOSED"
	}
}

// impactRank orders impact levels for overlapping records: complete >
// partial > normal. Within a tier the first record encountered wins.
func impactRank(l entity.ImpactLevel) int {
	switch l {
	case entity.ImpactComplete:
		return 2
	case entity.ImpactPartial:
		return 1
	default:
		return 0
	}
}

// ActiveMaintenance returns the maintenance record governing the current
// date, or nil if none is active. A record is active on every calendar
// date in [startDate, endDate] inclusive; time-of-day is ignored.
func ActiveMaintenance(records []entity.MaintenanceHistory, now time.Time) (*entity.MaintenanceHistory, error) {
	today := truncateToDate(now)
	var active *entity.MaintenanceHistory
	for i := range records {
		rec := &records[i]
		if !rec.ImpactLevel.Valid() {
			return nil, apperr.Validationf("invalid impact level %q", rec.ImpactLevel)
		}
		start, err := parseDate(rec.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(rec.EndDate)
		if err != nil {
			return nil, err
		}
		if today.Before(start) || today.After(end) {
			continue
		}
		if active == nil || impactRank(rec.ImpactLevel) > impactRank(active.ImpactLevel) {
			active = rec
		}
	}
	return active, nil
}

// ComputeRestaurantStatus decides the operating status at now.
//
//   - an active complete-impact record closes the restaurant outright
//   - an active partial-impact record degrades open hours to limited
//     service and closed hours to "after hours"
//   - otherwise the half-open hours interval [opening, closing) decides
//
// Malformed hours or maintenance dates fail with a validation error
// rather than defaulting to a status.
func ComputeRestaurantStatus(r *entity.Restaurant, records []entity.MaintenanceHistory, now time.Time) (Status, error) {
	opening, err := minuteOfDay(r.OpeningTime)
	if err != nil {
		return StatusClosed, err
	}
	closing, err := minuteOfDay(r.ClosingTime)
	if err != nil {
		return StatusClosed, err
	}
	n := nowMinutes(now)
	withinHours := opening <= n && n < closing

	active, err := ActiveMaintenance(records, now)
	if err != nil {
		return StatusClosed, err
	}
	if active != nil {
		switch active.ImpactLevel {
		case entity.ImpactComplete:
			return StatusClosedForMaintenance, nil
		case entity.ImpactPartial:
			if withinHours {
				return StatusOpenLimited, nil
			}
			return StatusClosedAfterHours, nil
		}
	}
	if withinHours {
		return StatusOpen, nil
	}
	return StatusClosed, nil
}

// MenuItemAvailability is the display projection for a single item.
type MenuItemAvailability struct {
	Available   bool   `json:"available"`
	Remaining   string `json:"remaining,omitempty"`
	AvailableIn string `json:"availableIn,omitempty"`
}

// IsMenuItemAvailable reports whether the item is orderable: the
// restaurant must be in an open state and now must fall inside the
// half-open serving window [start, end).
func IsMenuItemAvailable(item *entity.MenuItem, status Status, now time.Time) (bool, error) {
	if !status.IsOpen() {
		return false, nil
	}
	start, err := minuteOfDay(item.ServingStartTime)
	if err != nil {
		return false, err
	}
	end, err := minuteOfDay(item.ServingEndTime)
	if err != nil {
		return false, err
	}
	n := nowMinutes(now)
	return start <= n && n < end, nil
}

// TimeRemaining formats how long the item will still be served, e.g.
// "1h 30m remaining". Empty once the window has ended.
func TimeRemaining(item *entity.MenuItem, now time.Time) (string, error) {
	end, err := minuteOfDay(item.ServingEndTime)
	if err != nil {
		return "", err
	}
	remaining := end - nowMinutes(now)
	if remaining <= 0 {
		return "", nil
	}
	return spanText(remaining) + " remaining", nil
}

// TimeUntilAvailable formats how long until serving starts, e.g.
// "Available in 45m". Empty once the window has started.
func TimeUntilAvailable(item *entity.MenuItem, now time.Time) (string, error) {
	start, err := minuteOfDay(item.ServingStartTime)
	if err != nil {
		return "", err
	}
	until := start - nowMinutes(now)
	if until <= 0 {
		return "", nil
	}
	return "Available in " + spanText(until), nil
}

// ComputeMenuItemAvailability bundles the availability flag with its
// display projections. Remaining is set only while the item is
// available; AvailableIn only while the restaurant is open but the
// item's window has not started.
func ComputeMenuItemAvailability(item *entity.MenuItem, status Status, now time.Time) (MenuItemAvailability, error) {
	available, err := IsMenuItemAvailable(item, status, now)
	if err != nil {
		return MenuItemAvailability{}, err
	}
	out := MenuItemAvailability{Available: available}
	if available {
		out.Remaining, err = TimeRemaining(item, now)
	} else if status.IsOpen() {
		out.AvailableIn, err = TimeUntilAvailable(item, now)
	}
	if err != nil {
		return MenuItemAvailability{}, err
	}
	return out, nil
}
