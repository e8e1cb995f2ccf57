/*
Package registry manages named serializer factories and table schemas for
TableKit.

Serializer Registry:
Maps serializer names to factories so declarative table definitions can
reference pipelines by name:

	registry.RegisterSerializer("hex", func(enc *schema.Encryptor) (schema.Serializer, error) {
	    return hexSerializer{}, nil
	})

The serde package registers the built-in pipelines ("string", "json",
"compressed-json", "encrypted-json", "encrypted-string") during package
initialization.

Table Registry:
Associates table names with validated schemas:

	if err := registry.RegisterTable(eventsTable); err != nil {
	    return err
	}

The registries are thread-safe and should be populated during
initialization, typically in init() functions.
*/
package registry
