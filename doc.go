// Package htmlbundle turns an HTML page and the fonts and images it
// references into a single self-contained file.
//
// # Quick Start
//
// Create a bundler and bundle a document:
//
//	b, err := htmlbundle.NewBundler(htmlbundle.WithBaseDir("site"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Bundle(ctx, "index.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath) // site/index_bundled.html
//
// # Bundling
//
// Each asset in the bundler's list is looked up next to the input document.
// When found, its bytes are base64 encoded into a data URI and every
// reference to it is replaced:
//
//	url('MokotoRegular.ttf')  ->  url('data:font/ttf;base64,...')
//	src="logo_v2.png"         ->  src="data:image/png;base64,..."
//
// Font assets match CSS url() references, quoted or not. Image assets match
// quoted src attributes. Missing assets produce a warning on the progress
// writer and leave their references untouched.
//
// The output is written next to the input as <stem>_bundled<ext> unless
// WithOutputName says otherwise. An existing output is replaced atomically.
//
// # Configuration
//
// Use functional options to customize the bundler:
//
//	b, err := htmlbundle.NewBundler(
//	    htmlbundle.WithAssets([]htmlbundle.AssetSpec{
//	        {Filename: "brand.woff2", MIMEType: "font/woff2", Kind: htmlbundle.FontAsset},
//	    }),
//	    htmlbundle.WithProgress(os.Stdout),
//	    htmlbundle.WithAudit(true),
//	)
//
// Without WithBaseDir, relative input paths resolve against the directory
// of the running executable, not the working directory.
//
// # Error Handling
//
// Errors wrap sentinel values, check them with errors.Is:
//
//	if errors.Is(err, htmlbundle.ErrInputNotFound) {
//	    // nothing was written
//	}
package htmlbundle
