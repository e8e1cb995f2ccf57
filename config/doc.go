/*
Package config loads declarative table definitions from YAML files.

A definition names the attributes, keys, indices, and throughput of one
table, and may bind a serializer pipeline to an attribute by registry name:

	name: measurements
	throughput:
	  read: 5
	  write: 5
	attributes:
	  - name: id
	    type: S
	  - name: ts
	    type: N
	  - name: payload
	    type: B
	    serializer: encrypted-json
	    encryption:
	      algorithm: AES256
	      keyEnv: MEASUREMENTS_PAYLOAD_KEY
	keys:
	  - attribute: id
	    type: HASH
	  - attribute: ts
	    type: RANGE

Key material is referenced through environment variables (keyEnv) so the
files themselves stay free of secrets; pair with godotenv for local
development. ParseTable validates the resulting schema before returning it,
so a loaded table is always ready for ToWireSchema.
*/
package config
