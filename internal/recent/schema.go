package recent

import "github.com/invopop/jsonschema"

// Schema returns the JSON Schema of the persisted document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Document{})
	s.Title = "Recent files"
	s.Description = "Most recently used file paths, most recent first. At most 10 unique entries."
	if files, ok := s.Properties.Get("files"); ok {
		maxItems := uint64(MaxEntries)
		files.MaxItems = &maxItems
		files.UniqueItems = true
		files.Description = "File paths, most recent first."
	}
	return s
}
