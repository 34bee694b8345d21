/*
Package req binds the text values a client submits onto an application's structs.

A [*Parser] decodes either parameters - matched to fields through "schema" struct tags -
or a JSON body - matched through "json" struct tags - into a pointer to a struct,
then checks the result against the rules in its "validate" struct tags.

Whatever the source, failures come back as wings sentinel errors:
a value that does not fit its field or breaks a rule is a [ValidationErrors],
which unwraps to [wings.ErrNotValid];
a struct tag asking for something the decoder cannot do unwraps to [wings.ErrNotImplemented].
*/
package req
