// Project Structure Overview
/*
pageforge-backend/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── common.go
│   │   ├── user.go
│   │   ├── product_page.go
│   │   └── template.go
│   ├── export/
│   │   ├── types.go
│   │   ├── engine.go
│   │   ├── generic.go
│   │   ├── shopify.go
│   │   └── woocommerce.go
│   ├── handlers/
│   │   ├── auth.go
│   │   ├── page.go
│   │   ├── collection.go
│   │   ├── template.go
│   │   ├── export.go
│   │   ├── scan.go
│   │   ├── content.go
│   │   └── upload.go
│   ├── services/
│   │   ├── auth_service.go
│   │   ├── page_service.go
│   │   ├── collection_service.go
│   │   ├── template_service.go
│   │   ├── export_service.go
│   │   ├── content_service.go
│   │   ├── scan_service.go
│   │   └── storage_service.go
│   ├── middleware/
│   │   ├── auth.go
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   └── logging.go
│   ├── database/
│   │   └── connection.go
│   ├── utils/
│   │   ├── jwt.go
│   │   ├── validator.go
│   │   ├── crypto.go
│   │   ├── pagination.go
│   │   └── response.go
│   └── router/
│       └── router.go
├── go.mod
└── go.sum
*/

package main

// This file shows the project structure and main entry point
// The actual implementation will be in separate files as shown in the structure above
