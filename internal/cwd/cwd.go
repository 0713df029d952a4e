// Package cwd loads game worlds from CWD (conworld data) files, a
// TOML-based authoring format. A file defines the rooms, paths, items,
// containers, and player of a world; loading returns the fully wired World
// and a Kernel carrying the built-in command set, ready to drive.
package cwd

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rolph-recto/conworld/internal/command"
	"github.com/rolph-recto/conworld/internal/game"
)

// Format and Type are the header values every CWD file must carry.
const (
	Format = "conworld"
	Type   = "world"
)

var (
	// ErrBadHeader is the error returned when a file is not a CWD world
	// file.
	ErrBadHeader = errors.New("not a conworld world file")

	// ErrBadReference is the error returned when a definition refers to a
	// room, container, path, or direction that does not exist.
	ErrBadReference = errors.New("reference to undefined entity")
)

// WorldData is a loaded, fully wired world.
type WorldData struct {
	World  *game.World
	Kernel *command.Kernel
}

// fileInfo is the header every CWD file must contain.
type fileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

type topLevelWorldData struct {
	Format     string         `toml:"format"`
	Type       string         `toml:"type"`
	Player     playerDef      `toml:"player"`
	Rooms      []roomDef      `toml:"room"`
	Items      []itemDef      `toml:"item"`
	Containers []containerDef `toml:"container"`
}

type playerDef struct {
	Start string            `toml:"start"`
	Text  map[string]string `toml:"text"`
}

type roomDef struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Paths       []pathDef         `toml:"path"`
	Text        map[string]string `toml:"text"`
}

type pathDef struct {
	Direction   string            `toml:"direction"`
	Name        string            `toml:"name"`
	Destination string            `toml:"destination"`
	Blocked     bool              `toml:"blocked"`
	Text        map[string]string `toml:"text"`
}

type itemDef struct {
	Name        string            `toml:"name"`
	Synonyms    []string          `toml:"synonyms"`
	Description string            `toml:"description"`
	Holdable    bool              `toml:"holdable"`
	Containable bool              `toml:"containable"`
	Room        string            `toml:"room"`
	Container   string            `toml:"container"`
	Inventory   bool              `toml:"inventory"`
	Text        map[string]string `toml:"text"`
	Actions     []actionDef       `toml:"action"`
}

type containerDef struct {
	Name        string            `toml:"name"`
	Synonyms    []string          `toml:"synonyms"`
	Description string            `toml:"description"`
	Holdable    bool              `toml:"holdable"`
	Locked      bool              `toml:"locked"`
	Opened      bool              `toml:"opened"`
	Room        string            `toml:"room"`
	Text        map[string]string `toml:"text"`
	Actions     []actionDef       `toml:"action"`
}

// actionDef binds a verb on an item to an effect. Kind selects the effect:
// "echo" narrates message, "look" runs the item's look, the container kinds
// (open, close, lock, unlock) target the named container, and the path
// kinds (block, unblock, toggle) target a path named "room/direction".
type actionDef struct {
	Verb      string `toml:"verb"`
	Kind      string `toml:"kind"`
	Message   string `toml:"message"`
	Container string `toml:"container"`
	Path      string `toml:"path"`
}

// LoadWorldFile reads and wires a world from the CWD file at path.
func LoadWorldFile(path string) (WorldData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldData{}, fmt.Errorf("reading world file: %w", err)
	}
	wd, err := ParseWorldData(data)
	if err != nil {
		return WorldData{}, fmt.Errorf("world file %s: %w", path, err)
	}
	return wd, nil
}

// ParseWorldData parses and wires a world from CWD file contents.
func ParseWorldData(data []byte) (WorldData, error) {
	var info fileInfo
	if err := toml.Unmarshal(data, &info); err != nil {
		return WorldData{}, fmt.Errorf("decoding header: %w", err)
	}
	if info.Format != Format || info.Type != Type {
		return WorldData{}, fmt.Errorf("format %q, type %q: %w", info.Format, info.Type, ErrBadHeader)
	}

	var top topLevelWorldData
	if err := toml.Unmarshal(data, &top); err != nil {
		return WorldData{}, fmt.Errorf("decoding world data: %w", err)
	}

	return wireWorld(top)
}

func wireWorld(top topLevelWorldData) (WorldData, error) {
	w := game.NewWorld()

	// rooms first; everything else refers to them
	for _, rd := range top.Rooms {
		if rd.Name == "" {
			return WorldData{}, fmt.Errorf("room with empty name")
		}
		r := game.NewRoom(game.RoomDef{
			Name:        rd.Name,
			Description: rd.Description,
			Text:        rd.Text,
		})
		if err := w.AddRoom(r); err != nil {
			return WorldData{}, err
		}
	}

	// paths second, once every destination exists
	for _, rd := range top.Rooms {
		r := w.Room(rd.Name)
		for _, pd := range rd.Paths {
			d, err := game.ParseDirection(pd.Direction)
			if err != nil {
				return WorldData{}, fmt.Errorf("room %q: %v: %w", rd.Name, err, ErrBadReference)
			}
			dest := w.Room(pd.Destination)
			if dest == nil {
				return WorldData{}, fmt.Errorf("room %q: path %s leads to undefined room %q: %w",
					rd.Name, pd.Direction, pd.Destination, ErrBadReference)
			}
			p := game.NewPath(game.PathDef{
				Name:        pd.Name,
				Source:      r,
				Destination: dest,
				Blocked:     pd.Blocked,
				Text:        pd.Text,
			})
			if err := r.SetPath(d, p); err != nil {
				return WorldData{}, err
			}
		}
	}

	// player before items so inventory placement has somewhere to go
	start := w.Room(top.Player.Start)
	if start == nil {
		return WorldData{}, fmt.Errorf("player starts in undefined room %q: %w", top.Player.Start, ErrBadReference)
	}
	player, err := game.NewPlayer(game.PlayerDef{Location: start, Text: top.Player.Text})
	if err != nil {
		return WorldData{}, err
	}
	w.SetPlayer(player)

	// containers before plain items so contained placement can resolve them
	containers := make(map[string]*game.Container, len(top.Containers))
	for _, cd := range top.Containers {
		c := game.NewContainer(game.ContainerDef{
			Name:        cd.Name,
			Synonyms:    cd.Synonyms,
			Description: cd.Description,
			Holdable:    cd.Holdable,
			Locked:      cd.Locked,
			Opened:      cd.Opened,
			Text:        cd.Text,
		})
		room := w.Room(cd.Room)
		if room == nil {
			return WorldData{}, fmt.Errorf("container %q placed in undefined room %q: %w",
				cd.Name, cd.Room, ErrBadReference)
		}
		if err := room.AddItem(c.AsItem()); err != nil {
			return WorldData{}, err
		}
		containers[cd.Name] = c
	}

	items := make(map[string]*game.Item, len(top.Items))
	for _, id := range top.Items {
		it := game.NewItem(game.ItemDef{
			Name:        id.Name,
			Synonyms:    id.Synonyms,
			Description: id.Description,
			Holdable:    id.Holdable,
			Containable: id.Containable,
			Text:        id.Text,
		})
		items[id.Name] = it

		switch {
		case id.Container != "":
			c, ok := containers[id.Container]
			if !ok {
				return WorldData{}, fmt.Errorf("item %q placed in undefined container %q: %w",
					id.Name, id.Container, ErrBadReference)
			}
			// contained items live in their container's room list too
			if err := c.AsItem().Room().AddItem(it); err != nil {
				return WorldData{}, err
			}
			if err := c.Put(it); err != nil {
				return WorldData{}, err
			}
		case id.Inventory:
			if err := player.Give(it); err != nil {
				return WorldData{}, err
			}
		case id.Room != "":
			room := w.Room(id.Room)
			if room == nil {
				return WorldData{}, fmt.Errorf("item %q placed in undefined room %q: %w",
					id.Name, id.Room, ErrBadReference)
			}
			if err := room.AddItem(it); err != nil {
				return WorldData{}, err
			}
		default:
			return WorldData{}, fmt.Errorf("item %q has no placement (room, container, or inventory)", id.Name)
		}
	}

	// actions last, once every possible target exists
	for _, id := range top.Items {
		for _, ad := range id.Actions {
			act, err := resolveAction(w, containers, ad)
			if err != nil {
				return WorldData{}, fmt.Errorf("item %q: %w", id.Name, err)
			}
			items[id.Name].Bind(ad.Verb, act)
		}
	}
	for _, cd := range top.Containers {
		for _, ad := range cd.Actions {
			act, err := resolveAction(w, containers, ad)
			if err != nil {
				return WorldData{}, fmt.Errorf("container %q: %w", cd.Name, err)
			}
			containers[cd.Name].Bind(ad.Verb, act)
		}
	}

	kernel, err := command.NewKernel(w, command.Defaults(command.DefaultConfig()))
	if err != nil {
		return WorldData{}, err
	}

	return WorldData{World: w, Kernel: kernel}, nil
}

var actionKinds = map[string]game.ActionKind{
	"echo":    game.ActionEcho,
	"look":    game.ActionLook,
	"open":    game.ActionOpen,
	"close":   game.ActionClose,
	"lock":    game.ActionLock,
	"unlock":  game.ActionUnlock,
	"block":   game.ActionBlock,
	"unblock": game.ActionUnblock,
	"toggle":  game.ActionToggle,
}

func resolveAction(w *game.World, containers map[string]*game.Container, ad actionDef) (game.Action, error) {
	kind, ok := actionKinds[ad.Kind]
	if !ok {
		return game.Action{}, fmt.Errorf("action %q has unknown kind %q: %w", ad.Verb, ad.Kind, ErrBadReference)
	}

	act := game.Action{Kind: kind, Message: ad.Message}

	switch kind {
	case game.ActionOpen, game.ActionClose, game.ActionLock, game.ActionUnlock:
		c, ok := containers[ad.Container]
		if !ok {
			return game.Action{}, fmt.Errorf("action %q targets undefined container %q: %w",
				ad.Verb, ad.Container, ErrBadReference)
		}
		act.Container = c
	case game.ActionBlock, game.ActionUnblock, game.ActionToggle:
		p, err := resolvePath(w, ad.Path)
		if err != nil {
			return game.Action{}, fmt.Errorf("action %q: %w", ad.Verb, err)
		}
		act.Path = p
	}

	return act, nil
}

// resolvePath finds a path from a "room/direction" reference.
func resolvePath(w *game.World, ref string) (*game.Path, error) {
	var roomName, dirName string
	for i := range ref {
		if ref[i] == '/' {
			roomName, dirName = ref[:i], ref[i+1:]
			break
		}
	}
	if roomName == "" || dirName == "" {
		return nil, fmt.Errorf("path reference %q is not room/direction: %w", ref, ErrBadReference)
	}

	room := w.Room(roomName)
	if room == nil {
		return nil, fmt.Errorf("path reference %q names undefined room: %w", ref, ErrBadReference)
	}
	d, err := game.ParseDirection(dirName)
	if err != nil {
		return nil, fmt.Errorf("path reference %q: %v: %w", ref, err, ErrBadReference)
	}
	p := room.Path(d)
	if p == nil {
		return nil, fmt.Errorf("room %q has no path leading %s: %w", roomName, dirName, ErrBadReference)
	}
	return p, nil
}
