/*
Package serde implements the attribute serialization pipelines for TableKit.

A serializer converts between a domain value and a single-tag wire record
(a DynamoDB AttributeValue) and is an exact inverse of itself:
Deserialize(Serialize(v)) == v for every value in its declared domain.

The built-in pipelines, in fixed layering order (encode → compress →
encrypt → tag):

  - StringSerializer: string ↔ string-tagged record
  - JSONSerializer: object ↔ JSON text, tagged as string
  - CompressedJSONSerializer: JSON → gzip → binary tag
  - EncryptedJSONSerializer: JSON → gzip → AES-GCM → binary tag
  - EncryptedStringSerializer: raw string → AES-GCM → binary tag

Pipelines are selected per attribute by configuration, never by the shape
of the input. Each stacked layer's decode path is the byte-exact inverse of
its encode path, so new pipelines composed from the same stages keep the
round-trip property by construction.

The encrypted pipelines take their algorithm and key from the attribute's
Encryptor; constructing one without an encryptor is a configuration error.

The Codec type applies a set of attribute pipelines to whole records,
falling back to plain attributevalue marshaling for attributes without a
configured serializer.

All built-in pipelines are registered with the registry package under the
names "string", "json", "compressed-json", "encrypted-json", and
"encrypted-string" so declarative table definitions can reference them.
*/
package serde
