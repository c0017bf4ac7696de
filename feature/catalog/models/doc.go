// Package models defines the catalog rows and the payloads that create or update them.
//
// Parents (Package, Destination, Blog, Testimonial) own child rows that have no
// lifecycle of their own. Every child implements Row so the replacer can tag it
// with its owner and caller order. Category is the only shared reference; blogs
// link to it through the blog_categories membership table.
//
// Payloads use pointer fields so an absent field can be told apart from a zero
// value: absent scalars are left untouched on update, absent collections are kept,
// present collections are replaced in full.
package models
