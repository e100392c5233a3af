// Package http provides the request and response helpers used by the
// inspection API.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	format := req.Query("format", "text")
//	name   := req.RouteParam("name") // requires the chi router
//
//	v := req.Validate(validation.Rules{"format": "nullable|in:text,dot"})
//	if v.Fails() { ... }
//
// # Response
//
// Bodies are encoded with jsoniter in its standard-library compatible mode.
//
//	res := gohttp.NewResponse(w)
//
//	res.Success(info)                    // 200 {"data": info}
//	res.NotFound()                       // 404 {"message": "Not found."}
//	res.Error(http.StatusConflict, msg)  // {"message": msg}
//	res.ValidationError(v.Errors())      // 422 {"errors": {...}}
//	res.Text(http.StatusOK, "text/plain; charset=utf-8", body)
package http
