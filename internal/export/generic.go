// internal/export/generic.go
package export

// genericDocument is a fully self-contained static page: embedded stylesheet,
// every product value inlined as literal text, no host templating syntax.
const genericDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>[[.HeadTitle]]</title>
  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      line-height: 1.6;
      color: #333;
      background-color: #f9f9f9;
    }

    .container {
      max-width: 1200px;
      margin: 0 auto;
      padding: 20px;
    }

    .product-page {
      background: white;
      border-radius: 12px;
      overflow: hidden;
      box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
    }

    .product-header {
      padding: 40px;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: white;
      text-align: center;
    }

    .product-title {
      font-size: 2.5rem;
      font-weight: 700;
      margin-bottom: 16px;
    }

    .product-description {
      font-size: 1.2rem;
      opacity: 0.9;
    }

    .product-content {
      padding: 40px;
    }

    .product-grid {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 40px;
      margin-bottom: 40px;
    }

    .product-images {
      display: grid;
      gap: 16px;
    }

    .product-image {
      width: 100%;
      border-radius: 8px;
      box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
    }

    .product-details h3 {
      font-size: 1.5rem;
      margin-bottom: 16px;
      color: #2d3748;
    }

    .price {
      font-size: 2rem;
      font-weight: 700;
      color: #e53e3e;
      margin-bottom: 20px;
    }

    .features-list {
      list-style: none;
      margin-bottom: 20px;
    }

    .features-list li {
      padding: 8px 0;
      padding-left: 24px;
      position: relative;
    }

    .features-list li::before {
      content: "\2713";
      position: absolute;
      left: 0;
      color: #48bb78;
      font-weight: bold;
    }

    .specifications {
      background: #f7fafc;
      padding: 30px;
      border-radius: 8px;
      margin-top: 30px;
    }

    .specifications h3 {
      font-size: 1.5rem;
      margin-bottom: 20px;
      color: #2d3748;
    }

    .spec-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
      gap: 16px;
    }

    .spec-item {
      display: flex;
      justify-content: space-between;
      padding: 12px 0;
      border-bottom: 1px solid #e2e8f0;
    }

    .spec-label {
      font-weight: 600;
      color: #4a5568;
    }

    .spec-value {
      color: #2d3748;
    }

    .cta-section {
      text-align: center;
      margin-top: 40px;
      padding: 30px;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      border-radius: 8px;
    }

    .cta-button {
      background: white;
      color: #667eea;
      border: none;
      padding: 16px 32px;
      font-size: 1.1rem;
      font-weight: 600;
      border-radius: 8px;
      cursor: pointer;
      transition: transform 0.2s;
    }

    .cta-button:hover {
      transform: translateY(-2px);
    }

    @media (max-width: 768px) {
      .product-grid {
        grid-template-columns: 1fr;
        gap: 30px;
      }

      .product-title {
        font-size: 2rem;
      }

      .spec-grid {
        grid-template-columns: 1fr;
      }
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="product-page">
      <header class="product-header">
        <h1 class="product-title">[[.Title]]</h1>
        <p class="product-description">[[.Description]]</p>
      </header>

      <main class="product-content">
        <div class="product-grid">
          <div class="product-images">
[[- if .Images]]
[[- range .Images]]
            <img src="[[.]]" alt="[[$.Title]]" class="product-image">
[[- end]]
[[- else]]
            <img src="` + placeholderImageWide + `" alt="Product Image" class="product-image">
[[- end]]
          </div>

          <div class="product-details">
            <h3>Product Details</h3>
            <div class="price">[[.PriceDisplay]]</div>
[[- if .Features]]
            <ul class="features-list">
[[- range .Features]]
              <li>[[.]]</li>
[[- end]]
            </ul>
[[- end]]
          </div>
        </div>
[[- if .Specifications]]

        <section class="specifications">
          <h3>Specifications</h3>
          <div class="spec-grid">
[[- range .Specifications]]
            <div class="spec-item">
              <span class="spec-label">[[.Name]]:</span>
              <span class="spec-value">[[.Value]]</span>
            </div>
[[- end]]
          </div>
        </section>
[[- end]]

        <section class="cta-section">
          <button class="cta-button">Get This Product</button>
        </section>
      </main>
    </div>
  </div>
</body>
</html>
`
