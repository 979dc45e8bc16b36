package keymap

// Default returns the built-in bindings.
func Default() *Keymap {
	k := New("default")

	// Block navigation
	k.MustBind("alt+down", "block.moveDown")
	k.MustBind("alt+up", "block.moveUp")
	k.MustBind("shift+alt+down", "block.selectDown")
	k.MustBind("shift+alt+up", "block.selectUp")

	// Vim-flavored alternates
	k.MustBind("}", "block.moveDown")
	k.MustBind("{", "block.moveUp")

	// Folding
	k.MustBind("f", "fold.toggle")
	k.MustBind("F", "fold.open")
	k.MustBind("ctrl+f", "fold.openAll")

	// Application
	k.MustBind("q", "app.quit")
	k.MustBind("ctrl+c", "app.quit")
	k.MustBind("escape", "app.clearSelection")

	return k
}
