package dto

import (
	"fmt"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	"github.com/google/uuid"
)

// ToDomain converts a position payload, parsing the department tag and
// reconciling the status with the assignment.
func (p *PositionPayload) ToDomain() (domain.Position, error) {
	dept, err := domain.ParseDepartment(p.Department)
	if err != nil {
		return domain.Position{}, err
	}

	pos := domain.Position{
		ID:               p.ID,
		Name:             p.Name,
		Department:       dept,
		AssignedEmployee: p.AssignedEmployee.ToDomain(),
	}
	if pos.ID == "" {
		pos.ID = uuid.NewString()
	}

	switch {
	case p.Status != "":
		pos.Status = domain.PositionStatus(p.Status)
	case pos.AssignedEmployee != nil:
		pos.Status = domain.PositionAssigned
	default:
		pos.Status = domain.PositionUnassigned
	}

	if err := pos.Validate(); err != nil {
		return domain.Position{}, err
	}
	return pos, nil
}

func positionsToDomain(payloads []PositionPayload) ([]domain.Position, error) {
	positions := make([]domain.Position, 0, len(payloads))
	for i := range payloads {
		pos, err := payloads[i].ToDomain()
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// ToDomain converts a shift payload. The type must name a canonical labor period.
func (s *ShiftPayload) ToDomain() (domain.Shift, error) {
	period := domain.LaborPeriod(s.Type)
	if !period.Valid() {
		return domain.Shift{}, fmt.Errorf("unknown labor period %q", s.Type)
	}
	positions, err := positionsToDomain(s.Positions)
	if err != nil {
		return domain.Shift{}, err
	}
	return domain.Shift{
		Period:    period,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Positions: positions,
	}, nil
}

// ToDomain converts a time block payload, minting an id when absent.
func (b *TimeBlockPayload) ToDomain() (domain.TimeBlock, error) {
	positions, err := positionsToDomain(b.Positions)
	if err != nil {
		return domain.TimeBlock{}, err
	}
	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}
	return domain.TimeBlock{
		ID:        id,
		Label:     b.Label,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Positions: positions,
	}, nil
}

// ToDomain converts a day payload into its domain form.
func (d *DayPayload) ToDomain() (domain.Day, error) {
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return domain.Day{}, fmt.Errorf("invalid day date %q", d.Date)
	}
	day := domain.Day{Date: date}
	for i := range d.Shifts {
		shift, err := d.Shifts[i].ToDomain()
		if err != nil {
			return domain.Day{}, err
		}
		day.Shifts = append(day.Shifts, shift)
	}
	for i := range d.TimeBlocks {
		block, err := d.TimeBlocks[i].ToDomain()
		if err != nil {
			return domain.Day{}, err
		}
		day.Blocks = append(day.Blocks, block)
	}
	return day, nil
}

// DaysToDomain converts a full day array.
func DaysToDomain(payloads []DayPayload) ([]domain.Day, error) {
	days := make([]domain.Day, 0, len(payloads))
	for i := range payloads {
		day, err := payloads[i].ToDomain()
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
