package confmerge

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Bind decodes the merged configuration into out, which must be a pointer to
// a struct or map. Struct fields are matched through `mapstructure` tags;
// strings are decoded into time.Duration fields.
func (c *Configuration) Bind(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("confmerge: bind: %w", err)
	}
	if err := dec.Decode(c.Get()); err != nil {
		return fmt.Errorf("confmerge: bind: %w", err)
	}
	return nil
}
