// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package permission

// Block is the merged Read/Write resource state for one (context, scope).
type Block struct {
	Read  Grant
	Write Grant
}

// grant returns the block's state for a concrete action.
func (b Block) grant(
	action Action,
) Grant {
	if action == ActionWrite {
		return b.Write
	}

	return b.Read
}

// Compile merges an ordered sequence of roles into a query engine.
// It never fails: permission strings with an unrecognized action token
// are skipped so one bad entry cannot deny a user's remaining grants.
// The returned engine is read-only and safe for concurrent queries.
func Compile(
	roles []Role,
) *Engine {
	e := &Engine{blocks: make(map[Key]Block)}

	for _, role := range roles {
		for _, p := range role.Permissions {
			parsed, err := parsePermission(p)
			if err != nil {
				continue
			}

			key := Key{Context: role.Context, Scope: parsed.Scope}
			block, ok := e.blocks[key]
			if !ok {
				e.order = append(e.order, key)
			}

			for _, action := range parsed.Action.expand() {
				switch action {
				case ActionWrite:
					block.Write = block.Write.merge(parsed.Resource)
				default:
					block.Read = block.Read.merge(parsed.Resource)
				}
			}

			e.blocks[key] = block
		}
	}

	for key, block := range e.blocks {
		block.Read = block.Read.normalize()
		block.Write = block.Write.normalize()
		e.blocks[key] = block
	}

	return e
}
