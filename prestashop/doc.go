// Package prestashop provides a client for the PrestaShop webservice API.
//
// The client maps the webservice's resource CRUD endpoints onto a handful of
// verbs (Search, Read, Write, Create, Unlink) plus helpers for binary uploads
// and product image downloads.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the public verbs and their resource conventions
//   - Executor: query parameters, URL building and the HTTP call (resty)
//   - Wire codecs: the JSON and XML strategies, selected once per client
//   - Classifier: maps status codes and error bodies to typed errors
//
// Payloads are built with the xmltree package. Write and create bodies are always
// XML, whichever format the responses use.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := prestashop.NewClient(
//		"https://shop.example.com",
//		"4MV3E41MFR7E3N9VNJE2W5EHS83E2EMI",
//		logger,
//		prestashop.WithFormat(prestashop.FormatJSON),
//		prestashop.WithLanguage("1"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	taxes, err := client.Search(ctx, "taxes",
//		prestashop.Filter("[name]=%5%"),
//		prestashop.Limit("3"),
//	)
//
//	_, err = client.Write(ctx, "taxes", xmltree.NewNode(
//		xmltree.F("tax", xmltree.NewNode(
//			xmltree.F("id", xmltree.Text("1")),
//			xmltree.F("rate", xmltree.Float(3.0)),
//			xmltree.F("name", client.Localized("3% tax")),
//		)),
//	))
//
// # Error Handling
//
// The package defines several error types:
//
//   - AuthenticationError: HTTP 401, the API key was rejected (matches ErrUnauthorized)
//   - ServiceError: any other failure status, with the remote error code and message
//   - ParsingError: a response body that could not be decoded
//   - EncodingError: a payload without exactly one root element
//   - InputError: arguments that cannot form a request (matches ErrUndefinedData for Create)
//
// Transport failures are returned wrapped and are not classified. CreateBinary is
// the exception to the rule: it reports a rejected upload as false.
//
//	var svcErr *prestashop.ServiceError
//	if errors.As(err, &svcErr) && svcErr.IsNotFound() {
//		// Handle missing record
//	}
package prestashop
