package types

// Metadata is a free-form key-value bag attached to a record
type Metadata map[string]string

// ToMap returns a plain map copy of the metadata
func (m Metadata) ToMap() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
