// Package i18n stores message catalogs keyed by language and dotted key, and
// is the message source behind the validator's catalogs.
//
// A catalog document is keyed by BCP 47 language code at the top level; each
// language holds a tree of messages that the Translator flattens into dotted
// keys ("validation.range.too_low"). Catalogs come from an adapter:
//
//   - FSAdapter reads every supported file of a directory in any fs.FS,
//     embedded catalogs included. NewDirectoryAdapter and NewFileAdapter
//     read from disk.
//   - S3Adapter reads every supported object under a bucket prefix.
//   - MapAdapter serves catalogs held in memory.
//
// JSON and YAML documents are supported. Language codes and document shape
// are checked at load time, so a malformed catalog fails loudly instead of
// silently missing messages.
//
// # Lookups
//
// Lookup reads one language exactly. Text matches the requested tag against
// the catalog languages first, so "en-GB" is served by "en", and falls back
// to the default language when the matched catalog lacks the key.
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./locales")
//
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage(language.English),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg, ok := translator.Text(language.BritishEnglish, "validation.range.too_low")
//
// Catalogs kept in object storage load the same way:
//
//	adapter, err := i18n.NewS3Adapter(ctx, i18n.NewYAMLParser(), i18n.S3Config{
//		Bucket: "translations",
//		Prefix: "validator/",
//		Region: "eu-central-1",
//	})
//
// Reload reads the adapter again and swaps the catalogs without interrupting
// readers; the old catalogs stay active when loading fails.
//
// # Error Handling
//
// Loading errors are sentinel values joined with the underlying cause:
//
//	if errors.Is(err, i18n.ErrS3BucketNotFound) {
//	    // fall back to embedded catalogs
//	}
package i18n
