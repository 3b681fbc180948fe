package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

var (
	// ErrEmptyCatalog is returned when creating a catalog without slots
	ErrEmptyCatalog = errors.New("domain: slot catalog is empty")

	// ErrInvalidSlotFormat is returned for a slot not in "HH:MM - HH:MM" form
	ErrInvalidSlotFormat = errors.New("domain: invalid slot format")

	// ErrOverlappingSlots is returned when catalog slots overlap or are out of order
	ErrOverlappingSlots = errors.New("domain: catalog slots overlap or are out of order")
)

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)\s*-\s*([01]\d|2[0-3]):([0-5]\d)$`)

// SlotCatalog is an ordered immutable set of bookable slots.
// It is built once at process start from configuration.
type SlotCatalog struct {
	slots []string
	index map[string]int
}

// NewSlotCatalog creates a catalog, validating slot format and ordering
func NewSlotCatalog(slots []string) (*SlotCatalog, error) {
	if len(slots) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &SlotCatalog{
		slots: make([]string, 0, len(slots)),
		index: make(map[string]int, len(slots)),
	}

	prevEnd := -1
	for _, slot := range slots {
		start, end, err := parseSlot(slot)
		if err != nil {
			return nil, err
		}
		if start < prevEnd {
			return nil, fmt.Errorf("%w: %q", ErrOverlappingSlots, slot)
		}
		if _, dup := c.index[slot]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrOverlappingSlots, slot)
		}

		c.index[slot] = len(c.slots)
		c.slots = append(c.slots, slot)
		prevEnd = end
	}

	return c, nil
}

// DefaultSlotCatalog returns a catalog of DefaultSlots
func DefaultSlotCatalog() *SlotCatalog {
	c, err := NewSlotCatalog(DefaultSlots)
	if err != nil {
		panic(err)
	}
	return c
}

// Slots returns a copy of the catalog slots in order
func (c *SlotCatalog) Slots() []string {
	out := make([]string, len(c.slots))
	copy(out, c.slots)
	return out
}

// Len returns the number of slots
func (c *SlotCatalog) Len() int {
	return len(c.slots)
}

// Contains checks that the slot belongs to the catalog
func (c *SlotCatalog) Contains(slot string) bool {
	_, ok := c.index[slot]
	return ok
}

// Validate reports whether every requested slot is in the catalog.
// An empty set is valid; callers enforce the at-least-one-slot rule.
func (c *SlotCatalog) Validate(requested []string) bool {
	return len(c.UnknownSlots(requested)) == 0
}

// UnknownSlots returns slots missing from the catalog, deduplicated, in request order
func (c *SlotCatalog) UnknownSlots(requested []string) []string {
	unknown := make([]string, 0)
	seen := make(map[string]struct{})
	for _, slot := range requested {
		if c.Contains(slot) {
			continue
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		unknown = append(unknown, slot)
	}
	return unknown
}

// Available returns catalog slots not in reserved, in catalog order
func (c *SlotCatalog) Available(reserved []string) []string {
	taken := make(map[string]struct{}, len(reserved))
	for _, slot := range reserved {
		taken[slot] = struct{}{}
	}

	available := make([]string, 0, len(c.slots))
	for _, slot := range c.slots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// Sort orders known slots by catalog position; unknown slots go last
func (c *SlotCatalog) Sort(slots []string) []string {
	out := make([]string, len(slots))
	copy(out, slots)

	sort.SliceStable(out, func(i, j int) bool {
		return c.position(out[i]) < c.position(out[j])
	})
	return out
}

func (c *SlotCatalog) position(slot string) int {
	if i, ok := c.index[slot]; ok {
		return i
	}
	return len(c.slots)
}

// parseSlot parses "HH:MM - HH:MM" into minutes since midnight
func parseSlot(slot string) (int, int, error) {
	m := slotPattern.FindStringSubmatch(slot)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, slot)
	}

	nums := make([]int, 4)
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, slot)
		}
		nums[i] = n
	}

	start := nums[0]*60 + nums[1]
	end := nums[2]*60 + nums[3]
	if end <= start {
		return 0, 0, fmt.Errorf("%w: %q ends before it starts", ErrInvalidSlotFormat, slot)
	}

	return start, end, nil
}
