package session

import (
	"time"

	"github.com/rshade/mindful/internal/catalog"
)

// Entrance delays.
const (
	// CardRevealStep is multiplied by a card's rank.
	CardRevealStep = 100 * time.Millisecond

	// ComparisonRevealDelay applies to every comparison tile.
	ComparisonRevealDelay = 100 * time.Millisecond

	// EnergyBarBaseDelay is added to each bar's own delay.
	EnergyBarBaseDelay = 500 * time.Millisecond
)

// ScheduleEntrances schedules the entrance of every card, comparison tile and
// energy bar in content and returns the issued tickets. step scales the card
// delay; zero uses CardRevealStep.
func (s *Session) ScheduleEntrances(step time.Duration) []Ticket {
	if step <= 0 {
		step = CardRevealStep
	}

	var tickets []Ticket
	add := func(id string, delay time.Duration) {
		if t, ok := s.reveals.Schedule(id, delay); ok {
			tickets = append(tickets, t)
		}
	}

	for i := range s.content.Comparisons {
		add(catalog.ComparisonRevealID(i), ComparisonRevealDelay)
	}
	for i, bar := range s.content.EnergyBars {
		add(catalog.EnergyBarRevealID(i), EnergyBarBaseDelay+time.Duration(bar.DelayMs)*time.Millisecond)
	}
	for _, cat := range s.content.Categories {
		add(cat.RevealID(), time.Duration(cat.Rank)*step)
	}
	return tickets
}

// RevealAll makes every entrance visible at once, for when animation is
// disabled or the output is static.
func (s *Session) RevealAll() {
	for i := range s.content.Comparisons {
		s.reveals.RevealNow(catalog.ComparisonRevealID(i))
	}
	for i := range s.content.EnergyBars {
		s.reveals.RevealNow(catalog.EnergyBarRevealID(i))
	}
	for _, cat := range s.content.Categories {
		s.reveals.RevealNow(cat.RevealID())
	}
}
