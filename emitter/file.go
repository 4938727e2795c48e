/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package emitter

import (
	"fmt"
	"os"

	"dirpx.dev/yamx/apis"
)

// DefaultFilePermissions is used by WriteFile: read/write for the owner,
// read for group and others.
const DefaultFilePermissions os.FileMode = 0o644

// WriteFile renders node according to style and writes the document to
// path. Use a more restrictive perm (e.g. 0600) for sensitive documents.
func WriteFile(path string, node *apis.Node, style apis.Style, perm os.FileMode) error {
	data, err := Encode(node, style)
	if err != nil {
		return fmt.Errorf("yamx(emitter): encode for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("yamx(emitter): write file: %w", err)
	}
	return nil
}
