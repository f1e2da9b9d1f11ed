/*
Package bitfield packs fixed-width unsigned integer fields into a single word.

A Codec is declared with the width of the word and the ordered widths of its
fields. Fields are laid out most significant first and must fit in the word;
bits left over at the bottom of the word are always zero.

Packing

Codec.Pack validates every value against the width of its field and reports
values that do not fit with an error wrapping ErrOverflow. Codec.Unpack is
the inverse operation and never fails.

Schemas

Layouts can be described by JSON documents (see Schema), which also carry
field names. The command line tool at ./cmd/bitfield packs, unpacks and
prints words from such schemas.
*/
package bitfield
