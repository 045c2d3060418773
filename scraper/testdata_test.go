package scraper

const listingHTML = `<!DOCTYPE html>
<html>
<body>
  <main>
    <h1>Little Country Houses - Poppy's Pad with hot tub</h1>
    <div data-section-id="OVERVIEW_DEFAULT_V2">
      <h2>Entire cabin in Norfolk, United Kingdom</h2>
      <ol>
        <li>2 guests</li>
        <li>· 1 bedroom</li>
        <li>· 1 bed</li>
        <li>· 1 bath</li>
      </ol>
    </div>
    <div data-section-id="AMENITIES_DEFAULT"><button>Show all 32 amenities</button></div>
  </main>
  <div role="dialog" aria-label="What this place offers">
    <ul>
      <li>Kitchen</li>
      <li>Wifi</li>
      <li>   </li>
      <li>Hot tub</li>
      <li>Unavailable: Carbon monoxide alarm</li>
      <li>Unavailable: Smoke alarm</li>
    </ul>
  </div>
  <footer><button>Accept all</button></footer>
</body>
</html>`

const notFoundHTML = `<!DOCTYPE html>
<html>
<body>
  <h1>Oops!</h1>
  <h2>We can’t seem to find the page you’re looking for.</h2>
  <h6>Error code: 404</h6>
  <footer><button>Accept all</button></footer>
</body>
</html>`
