// Package upload stores catalog images in object storage.
//
// POST /upload accepts a multipart "file", or JSON with either a base64 "dataUrl"
// or a remote "url" to fetch. Objects land under <upload_folder>/<uuid><ext> and the
// response carries {"url", "public_id"}; only the URL is ever stored on catalog rows.
// DELETE /upload/<public_id> removes an object, restricted to the upload folder.
package upload
