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

package apis

// Canonical YAML 1.1 tags used by the built-in representers.
const (
	TagNull      = "tag:yaml.org,2002:null"
	TagBool      = "tag:yaml.org,2002:bool"
	TagInt       = "tag:yaml.org,2002:int"
	TagFloat     = "tag:yaml.org,2002:float"
	TagStr       = "tag:yaml.org,2002:str"
	TagBinary    = "tag:yaml.org,2002:binary"
	TagTimestamp = "tag:yaml.org,2002:timestamp"
	TagSeq       = "tag:yaml.org,2002:seq"
	TagMap       = "tag:yaml.org,2002:map"
)

// NodeKind discriminates the three node variants.
type NodeKind uint8

const (
	// ScalarNode is a single tagged text value.
	ScalarNode NodeKind = iota + 1
	// SequenceNode is an ordered list of child nodes.
	SequenceNode
	// MappingNode is an ordered list of key/value node pairs.
	MappingNode
)

// Node is the serialized form produced by representers and consumed by the
// emitter. It is a plain tagged variant: exactly one of Value, Items, or
// Pairs is meaningful depending on Kind.
//
// Mapping pairs keep the order the representer produced them in; the
// emitter never reorders them.
type Node struct {
	// Kind selects the variant.
	Kind NodeKind
	// Tag is the canonical YAML tag of the node.
	Tag string
	// Value is the scalar text (ScalarNode only).
	Value string
	// Items are the sequence elements (SequenceNode only).
	Items []*Node
	// Pairs are the mapping entries in emission order (MappingNode only).
	Pairs []NodePair
	// Flow requests inline rendering for this node regardless of the
	// style's flow mode. Representers may set it; the emitter honors it.
	Flow bool
}

// NodePair is a single key/value entry of a mapping node.
type NodePair struct {
	Key   *Node
	Value *Node
}

// NewScalar constructs a scalar node.
func NewScalar(tag, value string) *Node {
	return &Node{Kind: ScalarNode, Tag: tag, Value: value}
}

// NewSequence constructs a sequence node over items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: SequenceNode, Tag: TagSeq, Items: items}
}

// NewMapping constructs a mapping node over pairs.
func NewMapping(pairs ...NodePair) *Node {
	return &Node{Kind: MappingNode, Tag: TagMap, Pairs: pairs}
}

// IsContainer reports whether n is a sequence or mapping node.
func (n *Node) IsContainer() bool {
	return n != nil && (n.Kind == SequenceNode || n.Kind == MappingNode)
}

// ScalarChildrenOnly reports whether every direct child of n is a scalar.
// Scalars themselves trivially satisfy it. The emitter uses this to decide
// flow rendering in FlowAuto mode.
func (n *Node) ScalarChildrenOnly() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case SequenceNode:
		for _, it := range n.Items {
			if it == nil || it.Kind != ScalarNode {
				return false
			}
		}
		return true
	case MappingNode:
		for _, p := range n.Pairs {
			if p.Key == nil || p.Key.Kind != ScalarNode {
				return false
			}
			if p.Value == nil || p.Value.Kind != ScalarNode {
				return false
			}
		}
		return true
	default:
		return true
	}
}
