// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry for one usage-error class.
type Id int

const (
	IncompatibleOperationId Id = iota + 1
	MissingTextId
	SuperfluousTextId
	NumericTextId
	MissingKeyId
	SuperfluousKeyId
	ShiftKeyRequiredId
	AlphabetKeyInvalidId
	NumvalTokenInvalidId
)

// MarkdownMsg is markdown help text rendered for the user.
type MarkdownMsg string

// Issue is one catalog entry: a usage-error class with rendered help.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the entry's markdown with the given glamour style
// ("auto", "dark", or "light").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	incompatibleOperationIssue = &Issue{
		id: IncompatibleOperationId,
		mdMsg: `
# Operation not compatible with this cipher

Not every cipher supports every operation.

| Cipher | encrypt | decrypt | bruteforce | generate | info |
|--------|---------|---------|------------|----------|------|
| rot    | yes     | yes     | yes        | yes      | yes  |
| subst  | yes     | yes     | -          | yes      | yes  |
| numval | yes     | yes     | -          | -        | yes  |
| atbash | yes     | yes     | -          | -        | yes  |

## Things you can try:
- Run ` + "`cipherly list`" + ` to see the full compatibility table
- Bruteforce only makes sense for rot, where just 26 keys exist
- Keyless ciphers (numval, atbash) have nothing to generate`,
	}

	missingTextIssue = &Issue{
		id: MissingTextId,
		mdMsg: `
# Missing text input

Encrypt, decrypt, and bruteforce all need text to work on.

## Things you can try:
- Pass the text directly:
~~~
$ cipherly --rot -e -t "attack at dawn" -k 3
~~~

- Or pass a file path; its contents are used as the text:
~~~
$ cipherly --rot -e -t message.txt -k 3
~~~`,
	}

	superfluousTextIssue = &Issue{
		id: SuperfluousTextId,
		mdMsg: `
# Text input not needed

The generate and info operations take no text: generate produces a
fresh key and info describes the cipher.

## Things you can try:
- Drop the ` + "`-t/--text`" + ` flag:
~~~
$ cipherly --subst -g
~~~`,
	}

	numericTextIssue = &Issue{
		id: NumericTextId,
		mdMsg: `
# Text input is purely numeric

A text made only of digits is almost always a numval ciphertext, not a
plaintext, so it is rejected to catch swapped flags.

## Things you can try:
- To decode numbers back into letters, use numval decrypt:
~~~
$ cipherly --numval -d -t "3 1 2"
~~~

- If the digits really are your plaintext, add any non-digit character`,
	}

	missingKeyIssue = &Issue{
		id: MissingKeyId,
		mdMsg: `
# Missing key

Encrypting or decrypting with this cipher requires a key.

## Things you can try:
- rot takes an integer key:
~~~
$ cipherly --rot -e -t "hello" -k 13
~~~

- subst takes a 26-letter key alphabet:
~~~
$ cipherly --subst -e -t "hello" -k QWERTYUIOPASDFGHJKLZXCVBNM
~~~

- Generate a key first if you don't have one:
~~~
$ cipherly --subst -g
~~~`,
	}

	superfluousKeyIssue = &Issue{
		id: SuperfluousKeyId,
		mdMsg: `
# Key not needed

This cipher/operation combination takes no key: numval and atbash use
fixed mappings, and bruteforce exists precisely because the key is
unknown.

## Things you can try:
- Drop the ` + "`-k/--key`" + ` flag:
~~~
$ cipherly --atbash -e -t "hello"
~~~`,
	}

	shiftKeyRequiredIssue = &Issue{
		id: ShiftKeyRequiredId,
		mdMsg: `
# Integer key required

The rot cipher shifts letters by a fixed number of positions, so its
key must be an integer.

## Things you can try:
- Pass a whole number (negative values are fine):
~~~
$ cipherly --rot -e -t "hello" -k 13
~~~

- Generate a random key:
~~~
$ cipherly --rot -g
~~~`,
	}

	alphabetKeyInvalidIssue = &Issue{
		id: AlphabetKeyInvalidId,
		mdMsg: `
# Invalid key alphabet

The subst cipher's key must be a rearrangement of the 26 letters: every
letter exactly once, nothing else. Decryption is ill-defined otherwise.

## Things you can try:
- Check the key for duplicated or missing letters
- Generate a valid key:
~~~
$ cipherly --subst -g
~~~`,
	}

	numvalTokenInvalidIssue = &Issue{
		id: NumvalTokenInvalidId,
		mdMsg: `
# Invalid numval token

A numval ciphertext is whitespace-separated integers between 0 and 26:
0 is a space and 1 through 26 are the letters A through Z.

## Things you can try:
- Check the input for stray characters or out-of-range numbers
- A valid ciphertext looks like:
~~~
$ cipherly --numval -d -t "8 5 12 12 15"
~~~`,
	}

	issues = map[Id]*Issue{
		incompatibleOperationIssue.Id(): incompatibleOperationIssue,
		missingTextIssue.Id():           missingTextIssue,
		superfluousTextIssue.Id():       superfluousTextIssue,
		numericTextIssue.Id():           numericTextIssue,
		missingKeyIssue.Id():            missingKeyIssue,
		superfluousKeyIssue.Id():        superfluousKeyIssue,
		shiftKeyRequiredIssue.Id():      shiftKeyRequiredIssue,
		alphabetKeyInvalidIssue.Id():    alphabetKeyInvalidIssue,
		numvalTokenInvalidIssue.Id():    numvalTokenInvalidIssue,
	}
)

// Values returns all catalog entries in Id order.
func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}

// Get returns the catalog entry for id, or nil if none exists.
func Get(id Id) *Issue {
	return issues[id]
}
