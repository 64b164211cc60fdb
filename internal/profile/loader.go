package profile

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// Default is the profile used when --profile is not given.
const Default = "helm-kubernetes"

// ErrUnknownProfile is returned by Load for names with no embedded profile.
var ErrUnknownProfile = errors.New("unknown profile")

//go:embed profiles/*.yaml
var profileFS embed.FS

// builtinProfiles maps profile names to their metadata
var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := profileFS.ReadFile(path.Join("profiles", entry.Name()))
		if err != nil {
			continue
		}

		p, err := parse(data)
		if err != nil {
			continue
		}

		builtinProfiles[p.Name] = p
	}
}

func parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, errors.New("profile has no name")
	}
	return &p, nil
}

// Load returns a copy of the named profile.
func Load(name string) (*Profile, error) {
	p, ok := builtinProfiles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownProfile, name, Available())
	}

	cp := *p
	cp.NoteItems = append([]string(nil), p.NoteItems...)
	return &cp, nil
}

// Available returns the sorted names of all embedded profiles.
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
