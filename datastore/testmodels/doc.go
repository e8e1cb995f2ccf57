/*
Package testmodels holds the sample entities and table schemas used by the
package tests and the integration suite.

The models are ordinary annotated structs; nothing in them is specific to
testing, so they double as a worked example of how to declare an entity and
its table schema by hand rather than through a YAML definition file.
*/
package testmodels
