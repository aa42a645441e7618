package ast

// NodeID addresses a node in a Tree. NoNodeID marks an absent optional slot.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
