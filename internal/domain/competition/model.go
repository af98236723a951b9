package competition

import (
	"fmt"
	"regexp"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,6}$`)

// Competition is a league tab: the upstream code and the URL slug it is served under.
type Competition struct {
	Code    string
	Slug    string
	Name    string
	Preload bool
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

func (c Competition) Validate() error {
	if !ValidCode(c.Code) {
		return fmt.Errorf("competition code %q is invalid", c.Code)
	}
	if strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("competition %s slug is required", c.Code)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition %s name is required", c.Code)
	}
	return nil
}

// Catalog is the ordered set of league tabs.
type Catalog struct {
	items  []Competition
	bySlug map[string]int
	byCode map[string]int
}

func NewCatalog(items []Competition) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Competition, 0, len(items)),
		bySlug: make(map[string]int, len(items)),
		byCode: make(map[string]int, len(items)),
	}
	for _, item := range items {
		item.Code = NormalizeCode(item.Code)
		item.Slug = strings.ToLower(strings.TrimSpace(item.Slug))
		item.Name = strings.TrimSpace(item.Name)
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byCode[item.Code]; dup {
			return nil, fmt.Errorf("duplicate competition code %s", item.Code)
		}
		if _, dup := c.bySlug[item.Slug]; dup {
			return nil, fmt.Errorf("duplicate competition slug %s", item.Slug)
		}
		c.byCode[item.Code] = len(c.items)
		c.bySlug[item.Slug] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

func (c *Catalog) List() []Competition {
	out := make([]Competition, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) BySlug(slug string) (Competition, bool) {
	idx, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Competition{}, false
	}
	return c.items[idx], true
}

func (c *Catalog) ByCode(code string) (Competition, bool) {
	idx, ok := c.byCode[NormalizeCode(code)]
	if !ok {
		return Competition{}, false
	}
	return c.items[idx], true
}

// PreloadCodes lists the codes whose standings are warmed at startup.
func (c *Catalog) PreloadCodes() []string {
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if item.Preload {
			out = append(out, item.Code)
		}
	}
	return out
}
