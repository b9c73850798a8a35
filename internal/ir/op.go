// Package ir implements the control-flow-graph intermediate representation
// for the minic compiler.
package ir

// Op represents an IR operation code.
type Op int

const (
	OpInvalid Op = iota

	// Constants
	OpConst     // integer constant; AuxInt = value
	OpConstNull // null pointer constant

	// Arithmetic
	OpAdd // int + int
	OpSub // int - int
	OpMul // int * int
	OpDiv // int / int
	OpRem // int % int
	OpNeg // -int (unary)

	// Bitwise
	OpAnd // int & int
	OpOr  // int | int
	OpXor // int ^ int
	OpShl // int << int
	OpShr // int >> int
	OpNot // ~int (unary)

	// Comparison; result type is bool
	OpEq  // x == y
	OpNeq // x != y
	OpLt  // x < y
	OpLeq // x <= y
	OpGt  // x > y
	OpGeq // x >= y

	// Boolean
	OpLogicalNot // !bool

	// Memory
	OpAlloca     // stack slot; Type = *T; Aux = name
	OpLoad       // load from pointer; Args[0] = ptr
	OpStore      // store to pointer; Args[0] = ptr, Args[1] = val; void
	OpGlobalAddr // address of a global; Type = *T; Aux = *Global
	OpElemPtr    // element address; Args[0] = base ptr, Args[1:] = indices; Aux = pointee type

	// Calls
	OpCall // direct function call; Aux = *Func; Args = arguments

	// CFG-specific
	OpPhi // merge of values; Args = one per predecessor
	OpArg // function parameter; AuxInt = param index; Aux = param name

	opCount // sentinel; must be last
)

// OpInfo holds metadata about an IR operation.
type OpInfo struct {
	Name   string // human-readable name
	IsPure bool   // true if the op has no side effects and can be removed when unused
	IsVoid bool   // true if the op produces no value
}

// opInfoTable maps each Op to its OpInfo.
// Index by Op value.
var opInfoTable = [opCount]OpInfo{
	OpInvalid: {Name: "Invalid"},

	OpConst:     {Name: "Const", IsPure: true},
	OpConstNull: {Name: "ConstNull", IsPure: true},

	OpAdd: {Name: "Add", IsPure: true},
	OpSub: {Name: "Sub", IsPure: true},
	OpMul: {Name: "Mul", IsPure: true},
	OpDiv: {Name: "Div", IsPure: true},
	OpRem: {Name: "Rem", IsPure: true},
	OpNeg: {Name: "Neg", IsPure: true},

	OpAnd: {Name: "And", IsPure: true},
	OpOr:  {Name: "Or", IsPure: true},
	OpXor: {Name: "Xor", IsPure: true},
	OpShl: {Name: "Shl", IsPure: true},
	OpShr: {Name: "Shr", IsPure: true},
	OpNot: {Name: "Not", IsPure: true},

	OpEq:  {Name: "Eq", IsPure: true},
	OpNeq: {Name: "Neq", IsPure: true},
	OpLt:  {Name: "Lt", IsPure: true},
	OpLeq: {Name: "Leq", IsPure: true},
	OpGt:  {Name: "Gt", IsPure: true},
	OpGeq: {Name: "Geq", IsPure: true},

	OpLogicalNot: {Name: "LogicalNot", IsPure: true},

	// Memory ops are not pure: Alloca and Load carry memory state,
	// Store has a visible side effect. Address computations are pure.
	OpAlloca:     {Name: "Alloca"},
	OpLoad:       {Name: "Load"},
	OpStore:      {Name: "Store", IsVoid: true},
	OpGlobalAddr: {Name: "GlobalAddr", IsPure: true},
	OpElemPtr:    {Name: "ElemPtr", IsPure: true},

	OpCall: {Name: "Call"},

	OpPhi: {Name: "Phi", IsPure: true},
	OpArg: {Name: "Arg", IsPure: true},
}

// String returns the human-readable name of the op.
func (o Op) String() string {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o].Name
	}
	return "unknown"
}

// Info returns the OpInfo for this op.
func (o Op) Info() OpInfo {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o]
	}
	return OpInfo{Name: "unknown"}
}

// IsPure returns true if this op has no side effects.
func (o Op) IsPure() bool {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o].IsPure
	}
	return false
}

// IsVoid returns true if this op produces no value.
func (o Op) IsVoid() bool {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o].IsVoid
	}
	return false
}

// IsComparison returns true for the six comparison ops.
func (o Op) IsComparison() bool {
	return o >= OpEq && o <= OpGeq
}
