package npmmeta

import (
	"regexp"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

// authorPattern matches npm's author shorthand: an optional display name,
// an optional <email>, and an optional trailing (url) that is discarded.
// The display name group is non-greedy and ends at the first '<' or '(',
// even mid-name; npm cuts names the same way, so the boundary is kept.
var authorPattern = regexp.MustCompile(`^([^<(]+?)?[ \t]*(?:<([^>(]+?)>)?[ \t]*(?:\(([^)]+?)\)|$)`)

// Person is one normalized author or contributor entry. Name is always
// present, possibly empty; Email is present only when the entry carried one.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ParsePerson normalizes one author/contributor entry. Entries carrying a
// url or email key are treated as already structured: the name is taken
// verbatim, the email is kept when present, and the url is dropped. Any
// other entry has its name string parsed with authorPattern; a string the
// grammar cannot match at all is an INVALID_AUTHOR error naming it.
func ParsePerson(entry any) (Person, error) {
	person, ok := entry.(map[string]any)
	if !ok {
		return Person{}, errors.New(errors.ErrCodeInvalidAuthor, "person entry must be an object, got %T", entry)
	}

	_, hasURL := person["url"]
	_, hasEmail := person["email"]
	if hasURL || hasEmail {
		name, ok := person["name"].(string)
		if !ok {
			return Person{}, errors.New(errors.ErrCodeInvalidAuthor, "person entry has no name: %v", person)
		}
		p := Person{Name: name}
		if hasEmail {
			email, ok := person["email"].(string)
			if !ok {
				return Person{}, errors.New(errors.ErrCodeInvalidAuthor, "person email must be a string: %v", person["email"])
			}
			p.Email = email
		}
		return p, nil
	}

	name, ok := person["name"].(string)
	if !ok {
		return Person{}, errors.New(errors.ErrCodeInvalidAuthor, "person entry has no name: %v", person)
	}

	m := authorPattern.FindStringSubmatch(name)
	if m == nil {
		return Person{}, errors.New(errors.ErrCodeInvalidAuthor, "invalid author name: %q", name)
	}
	// The email group cannot capture an empty string, so "" means absent.
	return Person{Name: m[1], Email: m[2]}, nil
}
