package command

// File builtin.go holds the built-in command set. Defaults returns them in
// precedence order; the catch-all action command is last so that it never
// shadows a dedicated command sharing a leading verb.

import (
	"github.com/rolph-recto/conworld/internal/game"
	"github.com/rolph-recto/conworld/internal/util"
)

// Defaults returns the built-in commands in their fixed precedence order.
func Defaults(cfg Config) []*Command {
	return []*Command{
		NewLookRoomCommand(cfg),
		NewLookItemCommand(cfg),
		NewMoveCommand(cfg),
		NewTakeCommand(cfg),
		NewDiscardCommand(cfg),
		NewPutCommand(cfg),
		NewRemoveCommand(cfg),
		NewOpenCommand(cfg),
		NewCloseCommand(cfg),
		NewLockCommand(cfg),
		NewUnlockCommand(cfg),
		NewInventoryCommand(cfg),
		NewActionCommand(cfg),
	}
}

// NewLookRoomCommand matches a bare "look" or "view" and narrates the
// player's current room.
func NewLookRoomCommand(cfg Config) *Command {
	return New("look room", `^(look|view)$`, cfg.Stopwords, nil,
		func(c *Command, w *game.World, args Args) error {
			w.Player().Look()
			return nil
		})
}

// NewLookItemCommand matches "look <name>" and narrates the named item if
// the player can see it: in the room or inventory, and not shut inside a
// closed container.
func NewLookItemCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM": "You don't see a {item}.",
	}
	return New("look item", `^(look|view) (?P<item_name>[\w\s\d]+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			name := args["item_name"]
			it := findItem(w, name)
			if it == nil || !it.Visible() {
				c.say("NO_ITEM", map[string]string{"item": name})
				return nil
			}
			it.Look()
			return nil
		})
}

// NewMoveCommand matches "move <direction>" or "go <direction>", resolving
// the direction word through the config's synonym table.
func NewMoveCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_DIRECTION": "{direction} is not a direction.",
	}
	return New("move", `^(move|go) (?P<direction>\w+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			word := args["direction"]
			d, ok := cfg.Directions[word]
			if !ok {
				c.say("NO_DIRECTION", map[string]string{"direction": word})
				return nil
			}
			w.Player().Move(d)
			return nil
		})
}

// NewTakeCommand matches "take <name>". The inventory is checked before the
// room so that taking a held item reports "already in your inventory"
// rather than "no such item here".
func NewTakeCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM": "There is no {item} in the {room}.",
	}
	return New("take", `^take (?P<item_name>[\w\s\d]+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			name := args["item_name"]
			p := w.Player()

			if it := p.Item(name); it != nil {
				p.Take(it) // narrates ALREADY_TAKEN
				return nil
			}
			it := p.Location().Item(name)
			if it == nil {
				c.say("NO_ITEM", map[string]string{
					"item": name,
					"room": p.Location().Name(),
				})
				return nil
			}
			p.Take(it)
			return nil
		})
}

// NewDiscardCommand matches "discard <name>", "throw <name>", or
// "throw away <name>" and returns the named inventory item to the room.
func NewDiscardCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM": "There is no {item} in your inventory.",
	}
	return New("discard", `^(discard|throw away|throw) (?P<item_name>[\w\s\d]+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			name := args["item_name"]
			it := w.Player().Item(name)
			if it == nil {
				c.say("NO_ITEM", map[string]string{"item": name})
				return nil
			}
			w.Player().Discard(it)
			return nil
		})
}

// NewPutCommand matches "put <item> in <container>". It keeps "in" and
// "inside" out of its stopword set; they are the grammatical marker
// separating the two names.
func NewPutCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM":       "You don't see a {item}.",
		"NO_CONTAINER":  "You don't see a {container}.",
		"NOT_CONTAINER": "The {container} can't hold anything.",
	}
	stops := cfg.without("in", "inside")
	return New("put", `^(put|place) (?P<item_name>[\w\s\d]+?) (in|inside) (?P<container_name>[\w\s\d]+)$`, stops, texts,
		func(c *Command, w *game.World, args Args) error {
			itemName := args["item_name"]
			contName := args["container_name"]

			it := findItem(w, itemName)
			if it == nil {
				c.say("NO_ITEM", map[string]string{"item": itemName})
				return nil
			}
			holder := findItem(w, contName)
			if holder == nil {
				c.say("NO_CONTAINER", map[string]string{"container": contName})
				return nil
			}
			cont := holder.AsContainer()
			if cont == nil {
				c.say("NOT_CONTAINER", map[string]string{"container": contName})
				return nil
			}
			cont.Add(it)
			return nil
		})
}

// NewRemoveCommand matches "remove <item> out of <container>" or
// "remove <item> from <container>", validating that the item is actually
// inside the named container before removing it.
func NewRemoveCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM":       "You don't see a {item}.",
		"NO_CONTAINER":  "You don't see a {container}.",
		"NOT_CONTAINER": "The {container} can't hold anything.",
		"NOT_IN":        "The {item} is not in the {container}.",
	}
	stops := cfg.without("in", "inside")
	return New("remove", `^remove (?P<item_name>[\w\s\d]+?) (out of|from) (?P<container_name>[\w\s\d]+)$`, stops, texts,
		func(c *Command, w *game.World, args Args) error {
			itemName := args["item_name"]
			contName := args["container_name"]

			it := findItem(w, itemName)
			if it == nil {
				c.say("NO_ITEM", map[string]string{"item": itemName})
				return nil
			}
			holder := findItem(w, contName)
			if holder == nil {
				c.say("NO_CONTAINER", map[string]string{"container": contName})
				return nil
			}
			cont := holder.AsContainer()
			if cont == nil {
				c.say("NOT_CONTAINER", map[string]string{"container": contName})
				return nil
			}
			if it.Owner() != cont {
				c.say("NOT_IN", map[string]string{"item": itemName, "container": contName})
				return nil
			}
			cont.Remove(it)
			return nil
		})
}

// newContainerStateCommand builds the shared shape of the open, close,
// lock, and unlock commands.
func newContainerStateCommand(cfg Config, verb string, apply func(*game.Container)) *Command {
	texts := map[string]string{
		"NO_CONTAINER":  "You don't see a {container}.",
		"NOT_CONTAINER": "You can't " + verb + " the {container}.",
	}
	return New(verb, `^`+verb+` (?P<container_name>[\w\s\d]+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			name := args["container_name"]
			holder := findItem(w, name)
			if holder == nil {
				c.say("NO_CONTAINER", map[string]string{"container": name})
				return nil
			}
			cont := holder.AsContainer()
			if cont == nil {
				c.say("NOT_CONTAINER", map[string]string{"container": name})
				return nil
			}
			apply(cont)
			return nil
		})
}

// NewOpenCommand matches "open <container>".
func NewOpenCommand(cfg Config) *Command {
	return newContainerStateCommand(cfg, "open", (*game.Container).Open)
}

// NewCloseCommand matches "close <container>".
func NewCloseCommand(cfg Config) *Command {
	return newContainerStateCommand(cfg, "close", (*game.Container).Close)
}

// NewLockCommand matches "lock <container>".
func NewLockCommand(cfg Config) *Command {
	return newContainerStateCommand(cfg, "lock", (*game.Container).Lock)
}

// NewUnlockCommand matches "unlock <container>".
func NewUnlockCommand(cfg Config) *Command {
	return newContainerStateCommand(cfg, "unlock", (*game.Container).Unlock)
}

// NewInventoryCommand matches a bare "inventory" and lists held items that
// are not stored inside a held container.
func NewInventoryCommand(cfg Config) *Command {
	texts := map[string]string{
		"ITEMS":    "You have {items} in your inventory.",
		"NO_ITEMS": "You have no items in your inventory.",
	}
	return New("inventory", `^inventory$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			var names []string
			for _, it := range w.Player().Items() {
				if it.Owner() == nil {
					names = append(names, it.Name())
				}
			}
			if len(names) == 0 {
				c.say("NO_ITEMS", nil)
				return nil
			}
			c.say("ITEMS", map[string]string{"items": util.MakeTextList(names)})
			return nil
		})
}

// NewActionCommand matches any "<verb> <name>" pair and resolves the verb
// against the named item's action registry. It must be registered last;
// its pattern matches nearly everything.
func NewActionCommand(cfg Config) *Command {
	texts := map[string]string{
		"NO_ITEM": "You don't see a {item}.",
		"CANT":    "You can't {action} the {item}.",
	}
	return New("action", `^(?P<action_name>\w+) (?P<item_name>[\w\s\d]+)$`, cfg.Stopwords, texts,
		func(c *Command, w *game.World, args Args) error {
			verb := args["action_name"]
			name := args["item_name"]

			it := findItem(w, name)
			if it == nil {
				c.say("NO_ITEM", map[string]string{"item": name})
				return nil
			}
			handled, err := it.Invoke(verb)
			if err != nil {
				return err
			}
			if !handled {
				c.say("CANT", map[string]string{"action": verb, "item": name})
			}
			return nil
		})
}
