// Package types defines the error taxonomy and count-field limits shared by
// every rcolkit package.
//
// Errors are typed with stable categories so callers can branch on intent
// rather than text:
//
//	c, err := rcol.Parse(data, nil)
//	var te *types.Error
//	if errors.As(err, &te) && te.Kind == types.ErrKindMalformed {
//	    log.Printf("bad container at offset %d: %s", te.Offset, te.Msg)
//	}
//
// This package has no dependencies beyond the standard library.
package types
