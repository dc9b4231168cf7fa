package object

import "context"

// A Folder groups objects of one type under an owner.
type Folder struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	FolderClass string    `json:"folderClass,omitempty"`
	Parent      FolderRef `json:"folder"`
	State       string    `json:"state,omitempty"`

	UserProperties UserProperties `json:"userProperties,omitempty"`
}

// Reference implements Object. The folder's path is its parent's path
// followed by its name.
func (f *Folder) Reference() Reference {
	path := make([]string, 0, len(f.Parent.Path)+1)
	path = append(path, f.Parent.Path...)
	path = append(path, f.Name)
	return FolderRef{Type: f.Parent.Type, Owner: f.Parent.Owner, Path: path}.Reference()
}

// Dependencies implements Object. Root folders have no dependencies.
func (f *Folder) Dependencies() []Reference {
	s := refSet{}
	s.add(f.Parent.Reference())
	return s.sorted()
}

// MandatoryProperties implements Object.
func (f *Folder) MandatoryProperties() []string {
	var out []string
	if f.Parent.Type == "" || f.Parent.Owner.Name == "" {
		out = append(out, "folder")
	}
	return out
}

// UnchangeableProperties implements Object.
func (f *Folder) UnchangeableProperties(existing *Record) []string {
	var out []string
	if changed(existing, "folderClass", f.FolderClass) {
		out = append(out, "folderClass")
	}
	return out
}

// CloneBare implements Object.
func (f *Folder) CloneBare() Object {
	return &Folder{Name: f.Name, Parent: f.Parent}
}

// Create implements Object.
func (f *Folder) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, f)
}

// Update implements Object.
func (f *Folder) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, f, existing)
}

func (f *Folder) fill(b *recordBuilder) {
	b.set("name", f.Name)
	b.set("description", f.Description)
	b.set("folderClass", f.FolderClass)
	b.set("ownerType", f.Parent.Owner.Type)
	b.set("ownerName", f.Parent.Owner.Name)
	b.set("state", f.State)
	if len(f.UserProperties) > 0 {
		b.set("userProperties", f.UserProperties.clone())
	}
	b.ref("folder", f.Parent.Reference())
}
