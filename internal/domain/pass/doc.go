// Package pass defines the wallet pass data model: the variant-tagged Pass
// with its content document, images and localizations, plus the image-set
// validation rules each variant imposes.
//
// The model is owned by the caller and read-only to the bundling pipeline.
package pass
