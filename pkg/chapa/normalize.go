package chapa

import "github.com/google/uuid"

// normalize flattens the optional customization record into the top level
// and guarantees tx_ref is set, generating a fresh one when the caller did
// not supply it. The input map is left untouched.
func normalize(req TransactionRequest) TransactionRequest {
	out := make(TransactionRequest, len(req))
	for k, v := range req {
		out[k] = v
	}

	// customization keys win over top-level keys of the same name
	if custom, ok := asObject(out["customization"]); ok {
		for k, v := range custom {
			out[k] = v
		}
		delete(out, "customization")
	}

	if !truthy(out["tx_ref"]) {
		out["tx_ref"] = uuid.NewString()
	}

	return out
}
