package vfs

// Visitor receives callbacks during a depth-first walk of the directory
// tree, per §4.4.2. Each callback returns whether iteration should
// continue; returning false anywhere halts the walk early without error.
type Visitor struct {
	FolderBegin func(entry FATEntry) bool
	FolderEnd   func(entry FATEntry) bool
	File        func(entry FATEntry) bool
}

// Iterate walks the tree depth-first starting at the root directory page.
func (v *Vfs) Iterate(visitor Visitor) error {
	_, err := v.iterateDir(rootPageIndex, visitor)
	return err
}

// iterateDir returns (continue, error): continue is false once the
// visitor has asked to stop.
func (v *Vfs) iterateDir(page uint32, visitor Visitor) (bool, error) {
	for {
		entries, err := v.readDirPage(page)
		if err != nil {
			return false, err
		}

		for _, e := range entries {
			if e.Flags == 0 {
				return true, nil
			}

			switch e.Type {
			case TypeFile:
				if visitor.File != nil && !visitor.File(e) {
					return false, nil
				}
			case TypeFolder:
				if visitor.FolderBegin != nil && !visitor.FolderBegin(e) {
					return false, nil
				}
				cont, err := v.iterateDir(e.PageIndex, visitor)
				if err != nil {
					return false, err
				}
				if !cont {
					return false, nil
				}
				if visitor.FolderEnd != nil && !visitor.FolderEnd(e) {
					return false, nil
				}
			}
		}

		next, err := v.store.NextPageIndex(page)
		if err != nil {
			return false, err
		}
		if next == 0 {
			return true, nil
		}
		page = next
	}
}
