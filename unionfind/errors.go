package unionfind

import "errors"

// ErrIndexOutOfRange is the panic value (wrapped) for an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")
