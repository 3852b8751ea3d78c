package extract

import tfdocs "github.com/IdoAtNP/terraform-resource-docs"

// ExampleUsageRequest is the extraction policy for "Example Usage"
// sections: repeated example variants are merged under one heading
// titled after the resource, and unlabeled code fences default to HCL.
func ExampleUsageRequest(resource string, cfg tfdocs.RenderConfig) tfdocs.SectionRequest {
	if cfg.DefaultCodeLang == "" {
		cfg.DefaultCodeLang = "hcl"
	}
	return tfdocs.SectionRequest{
		Name:        SectionExampleUsage,
		Merge:       true,
		TitleSuffix: resource,
		Config:      cfg,
	}
}

// ArgumentReferenceRequest is the extraction policy for "Argument
// Reference" sections: first match wins and argument names render bold.
func ArgumentReferenceRequest(cfg tfdocs.RenderConfig) tfdocs.SectionRequest {
	cfg.BoldArgumentTerms = true
	return tfdocs.SectionRequest{
		Name:   SectionArgumentReference,
		Config: cfg,
	}
}
