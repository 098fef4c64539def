// Package schema validates wizard form values against field kinds.
//
// A Schema maps field names to types. The built-in types mirror the value
// kinds a FormData record may hold: string, bool, number and list of strings.
//
//	s := schema.Schema{
//	    "name":   schema.String(),
//	    "genres": schema.List(),
//	}
//
//	if err := schema.Validate(s, form); err != nil {
//	    // Handle validation errors
//	}
//
// Custom validators can be registered for domain-specific checks:
//
//	email := schema.Custom("email", func(v any) error {
//	    s, _ := v.(string)
//	    if !strings.Contains(s, "@") {
//	        return fmt.Errorf("must contain @")
//	    }
//	    return nil
//	})
package schema
